package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lucascresencio/leet-test/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Create a donation
// @Description  Charges the caller through the payment gateway and records the transaction.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payment  body      CreatePaymentRequest  true  "Payment data"
// @Success      200      {object}  Transaction
// @Failure      400      {object}  api.ErrorResponse
// @Failure      402      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) Create(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.service.CreatePayment(c.Request.Context(), userID, role, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// Get godoc
// @Summary      Get a donation
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  Transaction
// @Failure      404  {object}  api.ErrorResponse
// @Router       /payments/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	tx, err := h.service.GetPayment(c.Request.Context(), userID, role, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// List godoc
// @Summary      List my donations
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Transaction
// @Router       /payments [get]
func (h *Handler) List(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	transactions, err := h.service.ListPayments(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// respondError maps a payment error kind to its HTTP status. Gateway
// refusal reasons stay in the stored row; the HTTP body carries the
// classified detail only.
func respondError(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing failed"})
		return
	}

	status := http.StatusInternalServerError
	switch e.Kind {
	case KindForbidden:
		status = http.StatusForbidden
	case KindNotFound:
		status = http.StatusNotFound
	case KindInvalidReference, KindInvalidRequest:
		status = http.StatusBadRequest
	case KindPaymentRejected:
		status = http.StatusPaymentRequired
	case KindGatewayError:
		status = http.StatusBadGateway
	case KindGatewayUnavailable:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"error": e.Detail, "kind": string(e.Kind)})
}
