package handlers

import (
	"net/http"

	"portal-backend/models"
	"portal-backend/service"

	"github.com/gin-gonic/gin"
)

// AsistenteHandler handles HTTP requests for the Justina assistant
type AsistenteHandler struct {
	asistenteService *service.AsistenteService
}

// NewAsistenteHandler creates a new asistente handler
func NewAsistenteHandler(asistenteService *service.AsistenteService) *AsistenteHandler {
	return &AsistenteHandler{asistenteService: asistenteService}
}

// AsistenteRequest represents the request body for the assistant
type AsistenteRequest struct {
	Conversation []models.ChatTurn   `json:"conversation"`
	AllCases     []models.Expediente `json:"allCases"`
}

// Responder handles POST /api/asistente-justina
func (h *AsistenteHandler) Responder(c *gin.Context) {
	var req AsistenteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Solicitud inválida",
			"detalle": err.Error(),
		})
		return
	}

	respuesta, err := h.asistenteService.Responder(c.Request.Context(), req.Conversation, req.AllCases)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "El asistente no pudo responder",
			"detalle": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"respuesta": respuesta})
}
