package ong

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/lucascresencio/leet-test/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary      Register an ONG
// @Description  Creates an ONG owned by the authenticated user.
// @Tags         ongs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        ong  body      CreateONGRequest  true  "ONG data"
// @Success      201  {object}  ONG
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /ongs [post]
func (h *Handler) Create(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateONGRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CommissionRate.IsNegative() || req.CommissionRate.GreaterThan(one) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Commission rate must be between 0 and 1"})
		return
	}

	o, err := h.repo.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ONG"})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// Get godoc
// @Summary      Get an ONG
// @Tags         ongs
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "ONG ID"
// @Success      200  {object}  ONG
// @Failure      404  {object}  api.ErrorResponse
// @Router       /ongs/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ONG ID"})
		return
	}

	o, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ONG not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, o)
}

// List godoc
// @Summary      List ONGs
// @Tags         ongs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  ONG
// @Router       /ongs [get]
func (h *Handler) List(c *gin.Context) {
	ongs, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ONGs"})
		return
	}

	c.JSON(http.StatusOK, ongs)
}

// CreateCampaign godoc
// @Summary      Create a campaign
// @Tags         ongs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id        path      int                 true  "ONG ID"
// @Param        campaign  body      CreateNamedRequest  true  "Campaign data"
// @Success      201       {object}  Campaign
// @Failure      404       {object}  api.ErrorResponse
// @Router       /ongs/{id}/campaigns [post]
func (h *Handler) CreateCampaign(c *gin.Context) {
	h.createChild(c, func(ctx *gin.Context, ongID int, name string) (interface{}, error) {
		return h.repo.CreateCampaign(ctx.Request.Context(), ongID, name)
	})
}

// ListCampaigns godoc
// @Summary      List campaigns of an ONG
// @Tags         ongs
// @Security     BearerAuth
// @Produce      json
// @Param        id   path     int  true  "ONG ID"
// @Success      200  {array}  Campaign
// @Router       /ongs/{id}/campaigns [get]
func (h *Handler) ListCampaigns(c *gin.Context) {
	h.listChildren(c, func(ctx *gin.Context, ongID int) (interface{}, error) {
		return h.repo.ListCampaigns(ctx.Request.Context(), ongID)
	})
}

// CreateBase godoc
// @Summary      Create a base
// @Tags         ongs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "ONG ID"
// @Param        base  body      CreateNamedRequest  true  "Base data"
// @Success      201   {object}  Base
// @Failure      404   {object}  api.ErrorResponse
// @Router       /ongs/{id}/bases [post]
func (h *Handler) CreateBase(c *gin.Context) {
	h.createChild(c, func(ctx *gin.Context, ongID int, name string) (interface{}, error) {
		return h.repo.CreateBase(ctx.Request.Context(), ongID, name)
	})
}

// ListBases godoc
// @Summary      List bases of an ONG
// @Tags         ongs
// @Security     BearerAuth
// @Produce      json
// @Param        id   path     int  true  "ONG ID"
// @Success      200  {array}  Base
// @Router       /ongs/{id}/bases [get]
func (h *Handler) ListBases(c *gin.Context) {
	h.listChildren(c, func(ctx *gin.Context, ongID int) (interface{}, error) {
		return h.repo.ListBases(ctx.Request.Context(), ongID)
	})
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         ongs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "ONG ID"
// @Param        project  body      CreateNamedRequest  true  "Project data"
// @Success      201      {object}  Project
// @Failure      404      {object}  api.ErrorResponse
// @Router       /ongs/{id}/projects [post]
func (h *Handler) CreateProject(c *gin.Context) {
	h.createChild(c, func(ctx *gin.Context, ongID int, name string) (interface{}, error) {
		return h.repo.CreateProject(ctx.Request.Context(), ongID, name)
	})
}

// ListProjects godoc
// @Summary      List projects of an ONG
// @Tags         ongs
// @Security     BearerAuth
// @Produce      json
// @Param        id   path     int  true  "ONG ID"
// @Success      200  {array}  Project
// @Router       /ongs/{id}/projects [get]
func (h *Handler) ListProjects(c *gin.Context) {
	h.listChildren(c, func(ctx *gin.Context, ongID int) (interface{}, error) {
		return h.repo.ListProjects(ctx.Request.Context(), ongID)
	})
}

// CreateAttendee godoc
// @Summary      Create an attendee
// @Description  Registers a beneficiary attended by a project.
// @Tags         ongs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id         path      int                 true  "ONG ID"
// @Param        projectID  path      int                 true  "Project ID"
// @Param        attendee   body      CreateNamedRequest  true  "Attendee data"
// @Success      201        {object}  Attendee
// @Failure      404        {object}  api.ErrorResponse
// @Router       /ongs/{id}/projects/{projectID}/attendees [post]
func (h *Handler) CreateAttendee(c *gin.Context) {
	project, ok := h.resolveProject(c)
	if !ok {
		return
	}

	var req CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attendee, err := h.repo.CreateAttendee(c.Request.Context(), project.ID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attendee"})
		return
	}

	c.JSON(http.StatusCreated, attendee)
}

// ListAttendees godoc
// @Summary      List attendees of a project
// @Tags         ongs
// @Security     BearerAuth
// @Produce      json
// @Param        id         path     int  true  "ONG ID"
// @Param        projectID  path     int  true  "Project ID"
// @Success      200        {array}  Attendee
// @Router       /ongs/{id}/projects/{projectID}/attendees [get]
func (h *Handler) ListAttendees(c *gin.Context) {
	project, ok := h.resolveProject(c)
	if !ok {
		return
	}

	attendees, err := h.repo.ListAttendees(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendees"})
		return
	}

	c.JSON(http.StatusOK, attendees)
}

func (h *Handler) createChild(c *gin.Context, create func(*gin.Context, int, string) (interface{}, error)) {
	o, ok := h.resolveONG(c)
	if !ok {
		return
	}

	var req CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := create(c, o.ID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resource"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listChildren(c *gin.Context, list func(*gin.Context, int) (interface{}, error)) {
	o, ok := h.resolveONG(c)
	if !ok {
		return
	}

	items, err := list(c, o.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resources"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) resolveONG(c *gin.Context) (*ONG, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ONG ID"})
		return nil, false
	}

	o, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ONG not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, false
	}

	return o, true
}

func (h *Handler) resolveProject(c *gin.Context) (*Project, bool) {
	o, ok := h.resolveONG(c)
	if !ok {
		return nil, false
	}

	projectID, err := strconv.Atoi(c.Param("projectID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return nil, false
	}

	project, err := h.repo.FindProject(c.Request.Context(), projectID, o.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, false
	}

	return project, true
}
