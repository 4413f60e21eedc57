package webhook

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Receive godoc
// @Summary      Pagar.me webhook endpoint
// @Description  Logs and reconciles an asynchronous gateway event. Always answers 200 so the gateway does not retry malformed events forever; only a log-write failure is surfaced.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  api.StatusResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /webhooks/pagarme [post]
func (h *Handler) Receive(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if err := h.service.Process(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// List godoc
// @Summary      Inspect received webhook events
// @Description  Returns the most recent raw gateway events, newest first.
// @Tags         webhooks
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query     int  false  "Maximum events to return (default 50, max 500)"
// @Success      200    {array}   Log
// @Failure      400    {object}  api.ErrorResponse
// @Router       /webhooks/logs [get]
func (h *Handler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	logs, err := h.service.Logs(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch webhook logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
