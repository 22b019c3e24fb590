package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"portal-backend/llm"
	"portal-backend/models"
)

var (
	ErrMontoInvalido    = errors.New("invalid claim amount")
	ErrGenerationFailed = errors.New("failed to generate letter")
)

// CartaService composes demand letters: the numerically and date-sensitive
// clauses are rendered deterministically here, and only the narrative prose
// is delegated to the drafting provider.
type CartaService struct {
	provider llm.Provider
	now      func() time.Time
}

// CartaServiceOption is a functional option for CartaService
type CartaServiceOption func(*CartaService)

// CartaWithProvider sets the drafting provider
func CartaWithProvider(provider llm.Provider) CartaServiceOption {
	return func(s *CartaService) {
		s.provider = provider
	}
}

// CartaWithClock overrides the clock, for tests
func CartaWithClock(now func() time.Time) CartaServiceOption {
	return func(s *CartaService) {
		s.now = now
	}
}

// NewCartaService creates a new letter composition service
func NewCartaService(opts ...CartaServiceOption) *CartaService {
	s := &CartaService{
		provider: llm.Disabled{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClausulaConduccion decides which driving narrative the letter must carry:
// vehicle parked and unattended, driven by the insured client, or driven by
// a distinct named third party.
func (s *CartaService) ClausulaConduccion(req models.CartaRequest) string {
	conductor := strings.TrimSpace(req.Conductor)
	cliente := strings.TrimSpace(req.Nombre)

	if conductor == "" {
		return "El vehículo se encontraba correctamente estacionado y sin ocupantes al momento del siniestro. No mencionar conductor alguno."
	}

	if strings.EqualFold(conductor, cliente) {
		return "El vehículo era conducido por el propio asegurado. Referirse únicamente al cliente, sin mencionar un conductor aparte."
	}

	clausula := fmt.Sprintf("El vehículo era conducido por %s", conductor)
	if dni := strings.TrimSpace(req.DNIConductor); dni != "" {
		clausula += fmt.Sprintf(", DNI %s", dni)
	}
	return clausula + ". Identificar expresamente al conductor en el relato."
}

// ClausulaPruebas returns the standard supporting-document list, with the
// medical certificates item appended only when there are injuries.
func (s *CartaService) ClausulaPruebas(lesiones bool) []string {
	pruebas := []string{
		"Certificado de cobertura de la póliza",
		"Cédula verde del vehículo",
		"Documento Nacional de Identidad del asegurado",
		"Licencia de conducir",
		"Fotografías de los daños",
		"Presupuesto de reparación",
	}
	if lesiones {
		pruebas = append(pruebas, "Certificados médicos")
	}
	return pruebas
}

// Componer renders the deterministic clauses and assembles the drafting
// prompt. MontoTotal is the only validated field; identity fields pass
// through verbatim.
func (s *CartaService) Componer(req models.CartaRequest) (*models.Carta, error) {
	if math.IsNaN(req.MontoTotal) || req.MontoTotal < 0 {
		return nil, ErrMontoInvalido
	}

	// Amounts past the words ceiling must short-circuit before the int64
	// conversion: above MaxInt64 that conversion overflows.
	montoLetras := NumeroDemasiadoGrande
	if req.MontoTotal < 1_000_000_000 {
		montoLetras = NumeroALetras(int64(req.MontoTotal))
	}
	montoCifra := FormatearMonto(req.MontoTotal)
	fechaHoy := FormatearFecha(s.now())

	pruebas := s.ClausulaPruebas(req.Lesiones)
	var listaPruebas strings.Builder
	for _, prueba := range pruebas {
		listaPruebas.WriteString("- ")
		listaPruebas.WriteString(prueba)
		listaPruebas.WriteString("\n")
	}

	lesiones := "El asegurado no sufrió lesiones. No incluir reclamo por lesiones."
	if req.Lesiones {
		lesiones = fmt.Sprintf("El asegurado sufrió lesiones: %s. Incluir expresamente el reclamo por las lesiones sufridas.", req.DescripcionLesiones)
	}

	datos := fmt.Sprintf(`DATOS DEL RECLAMO:
Lugar y fecha de emisión: %s, %s
Aseguradora destinataria: %s
Domicilio de la aseguradora: %s
Asegurado: %s (DNI %s)
Póliza N°: %s
Compañía del asegurado: %s
Fecha del siniestro: %s
Hora: %s
Lugar del siniestro: %s
Vehículo asegurado: %s
Partes dañadas: %s
Tercero interviniente: %s (DNI %s)
Infracciones del tercero: %s
Relato del hecho: %s
Monto total reclamado: %s`,
		req.Lugar, fechaHoy,
		req.Aseguradora,
		req.DireccionAseguradora,
		req.Nombre, req.DNI,
		req.Poliza,
		req.Compania,
		req.FechaSiniestro,
		req.Hora,
		req.LugarSiniestro,
		req.Vehiculo,
		req.PartesDanadas,
		req.Tercero, req.DNITercero,
		req.Infracciones,
		req.Relato,
		montoCifra,
	)

	prompt := fmt.Sprintf(`Sos un abogado argentino especializado en reclamos de seguros automotores. Redactá el cuerpo de una carta documento de reclamo formal dirigida a la aseguradora, en base a los siguientes datos.

%s

SOBRE EL CONDUCTOR:
%s

SOBRE LAS LESIONES:
%s

DOCUMENTACIÓN RESPALDATORIA (copiar esta lista textualmente, sin reformularla):
%s
REQUISITOS DE FORMATO:
- Registro formal jurídico, en español rioplatense
- El monto reclamado debe expresarse exactamente como: PESOS %s (%s)
- Usar los datos textuales provistos, sin inventar hechos ni montos
- Sin formato markdown, texto plano
- No incluir firma ni datos del letrado: se agregan por separado

Redactá la carta ahora:`,
		datos,
		s.ClausulaConduccion(req),
		lesiones,
		listaPruebas.String(),
		strings.ToUpper(montoLetras), montoCifra,
	)

	resumen := fmt.Sprintf(`%s, %s

Sres. %s
%s

Ref.: Reclamo siniestro de fecha %s - Póliza N° %s

Por la presente, %s, DNI %s, formula reclamo formal por los daños sufridos por el vehículo %s en el siniestro ocurrido el %s a las %s en %s.

%s

Partes dañadas: %s.

Monto total reclamado: PESOS %s (%s).

Se acompaña la siguiente documentación:
%s`,
		req.Lugar, fechaHoy,
		req.Aseguradora,
		req.DireccionAseguradora,
		req.FechaSiniestro, req.Poliza,
		req.Nombre, req.DNI,
		req.Vehiculo, req.FechaSiniestro, req.Hora, req.LugarSiniestro,
		req.Relato,
		req.PartesDanadas,
		strings.ToUpper(montoLetras), montoCifra,
		listaPruebas.String(),
	)

	return &models.Carta{
		Prompt:  prompt,
		Pruebas: pruebas,
		Resumen: resumen,
	}, nil
}

// firma is the fixed signature block appended to every letter.
const firma = `____________________________
Dr. Ricardo A. Miraglia
Abogado
T° XII F° 345 C.A.L.P. - T° 98 F° 221 C.F.A.L.P.
CUIT 20-22333444-9
Calle 48 N° 720, La Plata, Buenos Aires
estudiomiraglia.legales@gmail.com`

// Finalizar appends the signature block to the drafted narrative. No other
// post-processing is applied to the provider's text.
func (s *CartaService) Finalizar(narrative string) string {
	return strings.TrimRight(narrative, "\n") + "\n\n" + firma
}

// GenerarCarta composes the letter, delegates the narrative to the drafting
// provider and finalizes the result. With no provider configured the
// deterministic body is used as-is, so the feature degrades instead of
// failing.
func (s *CartaService) GenerarCarta(ctx context.Context, req models.CartaRequest) (string, error) {
	carta, err := s.Componer(req)
	if err != nil {
		return "", err
	}

	narrative, err := s.provider.Complete(ctx, carta.Prompt)
	if err != nil {
		if errors.Is(err, llm.ErrProviderDisabled) {
			return s.Finalizar(carta.Resumen), nil
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return s.Finalizar(narrative), nil
}
