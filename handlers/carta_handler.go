package handlers

import (
	"errors"
	"log"
	"net/http"

	"portal-backend/models"
	"portal-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartaHandler handles HTTP requests for demand-letter generation
type CartaHandler struct {
	cartaService *service.CartaService
}

// NewCartaHandler creates a new carta handler
func NewCartaHandler(cartaService *service.CartaService) *CartaHandler {
	return &CartaHandler{cartaService: cartaService}
}

// GenerarCarta handles POST /api/generar-carta
func (h *CartaHandler) GenerarCarta(c *gin.Context) {
	var req models.CartaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Solicitud inválida",
			"detalle": err.Error(),
		})
		return
	}

	cartaID := uuid.New()
	texto, err := h.cartaService.GenerarCarta(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMontoInvalido) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Monto reclamado inválido",
				"detalle": err.Error(),
			})
			return
		}
		log.Printf("carta %s: generation failed: %v", cartaID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "No se pudo generar la carta",
			"detalle": err.Error(),
		})
		return
	}

	log.Printf("carta %s: generated for DNI %s", cartaID, req.DNI)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(texto))
}
