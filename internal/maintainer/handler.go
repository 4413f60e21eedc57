package maintainer

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/lucascresencio/leet-test/internal/auth"
	"github.com/lucascresencio/leet-test/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo     Repository
	userRepo user.Repository
}

func NewHandler(repo Repository, userRepo user.Repository) *Handler {
	return &Handler{repo: repo, userRepo: userRepo}
}

// Register godoc
// @Summary      Become a maintainer
// @Description  Registers the authenticated user as a maintainer (donor).
// @Tags         maintainers
// @Security     BearerAuth
// @Produce      json
// @Success      201  {object}  Maintainer
// @Failure      401  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /maintainers [post]
func (h *Handler) Register(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if _, err := h.repo.FindByUserID(c.Request.Context(), userID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User is already a maintainer"})
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	m, err := h.repo.Create(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register maintainer"})
		return
	}

	if err := h.userRepo.UpdateRole(c.Request.Context(), userID, auth.RoleMaintainer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role"})
		return
	}

	c.JSON(http.StatusCreated, m)
}

// GetMe godoc
// @Summary      Current maintainer
// @Tags         maintainers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Maintainer
// @Failure      404  {object}  api.ErrorResponse
// @Router       /maintainers/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	m, err := h.repo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintainer not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// ListCards godoc
// @Summary      List my cards
// @Description  Returns the caller's vaulted cards (metadata only).
// @Tags         maintainers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Card
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /maintainers/me/cards [get]
func (h *Handler) ListCards(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	m, err := h.repo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintainer not found"})
		return
	}

	cards, err := h.repo.ListCards(c.Request.Context(), m.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cards"})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// DeactivateCard godoc
// @Summary      Deactivate a card
// @Tags         maintainers
// @Security     BearerAuth
// @Produce      json
// @Param        cardID  path      string  true  "Gateway card ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /maintainers/me/cards/{cardID} [delete]
func (h *Handler) DeactivateCard(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	m, err := h.repo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintainer not found"})
		return
	}

	err = h.repo.SetCardStatus(c.Request.Context(), m.ID, c.Param("cardID"), "inactive")
	if err != nil {
		if errors.Is(err, ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deactivated"})
}
