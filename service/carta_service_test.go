package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"portal-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	reply string
	err   error
}

func (p fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.reply, p.err
}

func fixedClock() time.Time {
	return time.Date(2025, time.October, 18, 15, 0, 0, 0, ZonaArgentina)
}

func baseRequest() models.CartaRequest {
	return models.CartaRequest{
		Lugar:                "La Plata",
		Aseguradora:          "Seguros del Sur S.A.",
		DireccionAseguradora: "Av. 7 N° 1234, La Plata",
		Nombre:               "Juan Pérez",
		DNI:                  "30111222",
		Poliza:               "POL-445566",
		Compania:             "La Segunda",
		FechaSiniestro:       "2025-09-30",
		Hora:                 "18:45",
		LugarSiniestro:       "Calle 13 y 60, La Plata",
		Relato:               "El tercero embistió el lateral derecho del vehículo asegurado.",
		Vehiculo:             "Toyota Corolla, dominio AB123CD",
		PartesDanadas:        "puerta delantera derecha, espejo derecho",
		Tercero:              "Carlos Gómez",
		DNITercero:           "28999888",
		Infracciones:         "cruzó el semáforo en rojo",
		MontoTotal:           150000,
	}
}

func TestClausulaPruebas(t *testing.T) {
	s := NewCartaService()

	sinLesiones := s.ClausulaPruebas(false)
	assert.Len(t, sinLesiones, 6)
	assert.NotContains(t, sinLesiones, "Certificados médicos")

	conLesiones := s.ClausulaPruebas(true)
	assert.Len(t, conLesiones, 7)
	assert.Equal(t, "Certificados médicos", conLesiones[6])
}

func TestClausulaConduccion(t *testing.T) {
	s := NewCartaService()

	req := baseRequest()
	req.Conductor = ""
	assert.Contains(t, s.ClausulaConduccion(req), "estacionado")

	req.Conductor = " Juan Pérez "
	clausula := s.ClausulaConduccion(req)
	assert.Contains(t, clausula, "propio asegurado")
	assert.NotContains(t, clausula, "DNI")

	req.Conductor = "María Pérez"
	req.DNIConductor = "33444555"
	clausula = s.ClausulaConduccion(req)
	assert.Contains(t, clausula, "María Pérez")
	assert.Contains(t, clausula, "DNI 33444555")
}

func TestComponer(t *testing.T) {
	s := NewCartaService(CartaWithClock(fixedClock))

	carta, err := s.Componer(baseRequest())
	require.NoError(t, err)

	assert.Contains(t, carta.Prompt, "PESOS CIENTO CINCUENTA MIL ($ 150.000,00)")
	assert.Contains(t, carta.Prompt, "18 de octubre de 2025")
	assert.Contains(t, carta.Prompt, "Presupuesto de reparación")
	assert.NotContains(t, carta.Prompt, "Certificados médicos")
	assert.Len(t, carta.Pruebas, 6)
}

func TestComponerConLesiones(t *testing.T) {
	s := NewCartaService(CartaWithClock(fixedClock))

	req := baseRequest()
	req.Lesiones = true
	req.DescripcionLesiones = "esguince cervical"

	carta, err := s.Componer(req)
	require.NoError(t, err)

	assert.Contains(t, carta.Prompt, "esguince cervical")
	assert.Contains(t, carta.Prompt, "Certificados médicos")
	assert.Len(t, carta.Pruebas, 7)
}

func TestComponerMontoEnorme(t *testing.T) {
	s := NewCartaService(CartaWithClock(fixedClock))

	// Far past MaxInt64: a naive float64→int64 conversion would overflow.
	req := baseRequest()
	req.MontoTotal = 1e19

	var carta *models.Carta
	var err error
	require.NotPanics(t, func() {
		carta, err = s.Componer(req)
	})
	require.NoError(t, err)
	assert.Contains(t, carta.Prompt, strings.ToUpper(NumeroDemasiadoGrande))
}

func TestComponerMontoInvalido(t *testing.T) {
	s := NewCartaService()

	req := baseRequest()
	req.MontoTotal = -1
	_, err := s.Componer(req)
	assert.ErrorIs(t, err, ErrMontoInvalido)

	req.MontoTotal = math.NaN()
	_, err = s.Componer(req)
	assert.ErrorIs(t, err, ErrMontoInvalido)
}

func TestFinalizar(t *testing.T) {
	s := NewCartaService()

	letter := s.Finalizar("Cuerpo de la carta.\n")
	assert.True(t, strings.HasPrefix(letter, "Cuerpo de la carta."))
	assert.Contains(t, letter, "\n\n____________________________\n")
	assert.True(t, strings.HasSuffix(letter, "estudiomiraglia.legales@gmail.com"))
}

func TestGenerarCarta(t *testing.T) {
	s := NewCartaService(
		CartaWithClock(fixedClock),
		CartaWithProvider(fakeProvider{reply: "Texto redactado por el proveedor."}),
	)

	letter, err := s.GenerarCarta(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Contains(t, letter, "Texto redactado por el proveedor.")
	assert.True(t, strings.HasSuffix(letter, "estudiomiraglia.legales@gmail.com"))
}

func TestGenerarCartaProviderError(t *testing.T) {
	s := NewCartaService(
		CartaWithClock(fixedClock),
		CartaWithProvider(fakeProvider{err: errors.New("quota exceeded")}),
	)

	_, err := s.GenerarCarta(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerarCartaSinProveedor(t *testing.T) {
	// With no provider configured the deterministic body is served instead.
	s := NewCartaService(CartaWithClock(fixedClock))

	letter, err := s.GenerarCarta(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Contains(t, letter, "PESOS CIENTO CINCUENTA MIL ($ 150.000,00)")
	assert.True(t, strings.HasSuffix(letter, "estudiomiraglia.legales@gmail.com"))
}
