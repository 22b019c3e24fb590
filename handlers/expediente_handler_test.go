package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal-backend/models"
	"portal-backend/repository"
	"portal-backend/service"
	"portal-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	body []byte
}

func (s fixedSource) Name() string { return "familia" }

func (s fixedSource) Fetch(ctx context.Context) ([]byte, error) {
	return s.body, nil
}

func newExpedienteRouter(t *testing.T, records []models.Expediente) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, err := json.Marshal(records)
	require.NoError(t, err)

	repo := repository.NewExpedienteRepository([]storage.Source{fixedSource{body: body}}, 0)
	svc := service.NewExpedienteService(service.WithExpedienteRepository(repo))
	handler := NewExpedienteHandler(svc)

	r := gin.New()
	r.GET("/api/expediente/:dni", handler.GetExpediente)
	return r
}

func seededRecords() []models.Expediente {
	return []models.Expediente{
		{
			DNI:    "30111222",
			Nombre: "Juan Pérez",
			Observaciones: []models.Observacion{
				{Fecha: "2024-01-01", Texto: "Escrito presentado"},
				{Fecha: "2024-01-02", Texto: "// seguimiento interno"},
			},
		},
	}
}

func TestGetExpediente(t *testing.T) {
	router := newExpedienteRouter(t, seededRecords())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/expediente/30111222", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result []models.Expediente
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 1)
	require.Len(t, result[0].Observaciones, 1)
	assert.Equal(t, "Escrito presentado", result[0].Observaciones[0].Texto)
}

func TestGetExpedienteNoEncontrado(t *testing.T) {
	router := newExpedienteRouter(t, seededRecords())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/expediente/99999999", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Expediente no encontrado", envelope["error"])
}

func TestGetExpedienteSinFuentes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewExpedienteRepository(nil, 0)
	svc := service.NewExpedienteService(service.WithExpedienteRepository(repo))
	handler := NewExpedienteHandler(svc)

	r := gin.New()
	r.GET("/api/expediente/:dni", handler.GetExpediente)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/expediente/123", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope["detalle"])
}
