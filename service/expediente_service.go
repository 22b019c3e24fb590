package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"portal-backend/llm"
	"portal-backend/models"
	"portal-backend/repository"
)

// ExpedienteService answers DNI lookups with client-facing records: private
// and not-yet-due notes are filtered out, and the remaining note texts are
// rewritten into plain language when a provider is available. Any rewrite
// failure falls back to the original text.
type ExpedienteService struct {
	repo     *repository.ExpedienteRepository
	provider llm.Provider
	now      func() time.Time
}

// ExpedienteServiceOption is a functional option for ExpedienteService
type ExpedienteServiceOption func(*ExpedienteService)

// WithExpedienteRepository sets the record repository
func WithExpedienteRepository(repo *repository.ExpedienteRepository) ExpedienteServiceOption {
	return func(s *ExpedienteService) {
		s.repo = repo
	}
}

// WithRewriteProvider sets the note-rewriting provider
func WithRewriteProvider(provider llm.Provider) ExpedienteServiceOption {
	return func(s *ExpedienteService) {
		s.provider = provider
	}
}

// WithClock overrides the clock, for tests
func WithClock(now func() time.Time) ExpedienteServiceOption {
	return func(s *ExpedienteService) {
		s.now = now
	}
}

// NewExpedienteService creates a new expediente service
func NewExpedienteService(opts ...ExpedienteServiceOption) *ExpedienteService {
	s := &ExpedienteService{
		provider: llm.Disabled{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Buscar returns every matching record with its notes filtered to the
// client-visible ones. Zero matches is a valid result the handler maps to
// a 404.
func (s *ExpedienteService) Buscar(ctx context.Context, dni string) ([]models.Expediente, error) {
	records, err := s.repo.FindByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}

	hoy := s.today()
	out := make([]models.Expediente, 0, len(records))
	for _, record := range records {
		visible := make([]models.Observacion, 0, len(record.Observaciones))
		for _, obs := range record.Observaciones {
			if !s.esVisible(obs, hoy) {
				continue
			}
			obs.Texto = s.reescribir(ctx, obs.Texto)
			visible = append(visible, obs)
		}
		record.Observaciones = visible
		out = append(out, record)
	}

	return out, nil
}

// esVisible applies the client-facing note policy: the note needs a work
// date and a public non-empty text, and a scheduled revision still in the
// future withholds it until that date arrives.
func (s *ExpedienteService) esVisible(obs models.Observacion, hoy time.Time) bool {
	if strings.TrimSpace(obs.Fecha) == "" {
		return false
	}
	if strings.TrimSpace(obs.Texto) == "" || obs.EsPrivada() {
		return false
	}
	if obs.ProximaRevision != "" {
		revision, err := time.ParseInLocation("2006-01-02", obs.ProximaRevision, ZonaArgentina)
		if err == nil && revision.After(hoy) {
			return false
		}
	}
	return true
}

// today truncates the clock to the current calendar day in Argentina.
func (s *ExpedienteService) today() time.Time {
	now := s.now().In(ZonaArgentina)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ZonaArgentina)
}

// reescribir asks the provider for a client-friendly rendition of a note.
// Disabled provider or any provider failure keeps the original text.
func (s *ExpedienteService) reescribir(ctx context.Context, texto string) string {
	prompt := fmt.Sprintf(`Reescribí la siguiente actuación de un expediente judicial en un lenguaje claro y amable para el cliente, sin tecnicismos, sin agregar información y en una sola oración si es posible:

%s`, texto)

	rewritten, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		if !errors.Is(err, llm.ErrProviderDisabled) {
			log.Printf("Warning: note rewrite failed, keeping original text: %v", err)
		}
		return texto
	}
	return strings.TrimSpace(rewritten)
}
