package handlers

import (
	"net/http"

	"portal-backend/service"

	"github.com/gin-gonic/gin"
)

// ExpedienteHandler handles HTTP requests for case lookups
type ExpedienteHandler struct {
	expedienteService *service.ExpedienteService
}

// NewExpedienteHandler creates a new expediente handler
func NewExpedienteHandler(expedienteService *service.ExpedienteService) *ExpedienteHandler {
	return &ExpedienteHandler{expedienteService: expedienteService}
}

// GetExpediente handles GET /api/expediente/:dni
func (h *ExpedienteHandler) GetExpediente(c *gin.Context) {
	dni := c.Param("dni")

	expedientes, err := h.expedienteService.Buscar(c.Request.Context(), dni)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error al obtener los expedientes",
			"detalle": err.Error(),
		})
		return
	}

	if len(expedientes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Expediente no encontrado",
		})
		return
	}

	c.JSON(http.StatusOK, expedientes)
}
