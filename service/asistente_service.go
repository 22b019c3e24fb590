package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portal-backend/llm"
	"portal-backend/models"
)

// ErrAsistenteFailed wraps a provider failure while answering the assistant.
var ErrAsistenteFailed = errors.New("failed to answer assistant query")

// AsistenteNoDisponible is the fixed answer when no provider is configured.
const AsistenteNoDisponible = "El asistente no está disponible en este momento."

// AsistenteService is the "Justina" office assistant: it buckets the cases'
// scheduled revisions into overdue, due-today and upcoming groups and asks
// the chat provider for a working summary over them.
type AsistenteService struct {
	provider llm.Provider
	now      func() time.Time
}

// AsistenteServiceOption is a functional option for AsistenteService
type AsistenteServiceOption func(*AsistenteService)

// AsistenteWithProvider sets the chat provider
func AsistenteWithProvider(provider llm.Provider) AsistenteServiceOption {
	return func(s *AsistenteService) {
		s.provider = provider
	}
}

// AsistenteWithClock overrides the clock, for tests
func AsistenteWithClock(now func() time.Time) AsistenteServiceOption {
	return func(s *AsistenteService) {
		s.now = now
	}
}

// NewAsistenteService creates a new assistant service
func NewAsistenteService(opts ...AsistenteServiceOption) *AsistenteService {
	s := &AsistenteService{
		provider: llm.Disabled{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// agenda groups pending revisions relative to today.
type agenda struct {
	vencidas []string
	hoy      []string
	proximas []string
}

// Responder buckets every pending revision and asks the provider. With no
// provider configured it returns a fixed unavailable message instead of an
// error, so the endpoint degrades the same way the other AI features do.
func (s *AsistenteService) Responder(ctx context.Context, conversation []models.ChatTurn, casos []models.Expediente) (string, error) {
	prompt := s.buildPrompt(conversation, casos)

	respuesta, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrProviderDisabled) {
			return AsistenteNoDisponible, nil
		}
		return "", fmt.Errorf("%w: %v", ErrAsistenteFailed, err)
	}

	return strings.TrimSpace(respuesta), nil
}

func (s *AsistenteService) buildPrompt(conversation []models.ChatTurn, casos []models.Expediente) string {
	hoy := s.today()
	buckets := s.clasificar(casos, hoy)

	var builder strings.Builder
	builder.WriteString("Sos Justina, la asistente interna de un estudio jurídico de La Plata. Respondés en español rioplatense, de forma breve y concreta, solo sobre la agenda de expedientes que sigue.\n\n")
	builder.WriteString(fmt.Sprintf("Hoy es %s.\n\n", FormatearFecha(hoy)))

	writeBucket(&builder, "REVISIONES VENCIDAS", buckets.vencidas)
	writeBucket(&builder, "REVISIONES PARA HOY", buckets.hoy)
	writeBucket(&builder, "PRÓXIMAS REVISIONES (7 DÍAS)", buckets.proximas)

	builder.WriteString("CONVERSACIÓN:\n")
	for _, turn := range conversation {
		label := "Usuario"
		if strings.EqualFold(turn.Role, "assistant") || strings.EqualFold(turn.Role, "model") {
			label = "Justina"
		}
		builder.WriteString(fmt.Sprintf("%s: %s\n", label, turn.Content))
	}
	builder.WriteString("Justina:")

	return builder.String()
}

func writeBucket(builder *strings.Builder, title string, items []string) {
	builder.WriteString(title + ":\n")
	if len(items) == 0 {
		builder.WriteString("- (ninguna)\n")
	}
	for _, item := range items {
		builder.WriteString("- " + item + "\n")
	}
	builder.WriteString("\n")
}

// clasificar walks every public, pending note with a scheduled revision and
// places it in the bucket its date falls into. Completed notes and private
// annotations never reach the assistant.
func (s *AsistenteService) clasificar(casos []models.Expediente, hoy time.Time) agenda {
	var buckets agenda
	limite := hoy.AddDate(0, 0, 7)

	for _, caso := range casos {
		for _, obs := range caso.Observaciones {
			if obs.Completed || obs.EsPrivada() || obs.ProximaRevision == "" {
				continue
			}
			revision, err := time.ParseInLocation("2006-01-02", obs.ProximaRevision, ZonaArgentina)
			if err != nil {
				continue
			}

			item := fmt.Sprintf("%s (%s): %s - revisión %s",
				caso.Nombre, caso.Caratula, strings.TrimSpace(obs.Texto), obs.ProximaRevision)

			switch {
			case revision.Before(hoy):
				buckets.vencidas = append(buckets.vencidas, item)
			case revision.Equal(hoy):
				buckets.hoy = append(buckets.hoy, item)
			case !revision.After(limite):
				buckets.proximas = append(buckets.proximas, item)
			}
		}
	}

	return buckets
}

func (s *AsistenteService) today() time.Time {
	now := s.now().In(ZonaArgentina)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ZonaArgentina)
}
