package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"courtbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/courts", h.ListCourts)
	rg.GET("/courts/:id", h.GetCourt)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/courts", h.CreateCourt)
	rg.PUT("/courts/:id", h.UpdateCourt)
	rg.DELETE("/courts/:id", h.DeactivateCourt)
	rg.PATCH("/courts/:id/active", h.SetCourtActive)
}

func (h *Handler) ListCourts(c *gin.Context) {
	q := ListCourtsQuery{Sport: c.Query("sport")}

	if v := c.Query("indoor"); v != "" {
		indoor := v == "true"
		q.Indoor = &indoor
	}
	if v := c.Query("min_price"); v != "" {
		q.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_price"); v != "" {
		q.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("page"); v != "" {
		q.Page, _ = strconv.Atoi(v)
	}
	if v := c.Query("limit"); v != "" {
		q.Limit, _ = strconv.Atoi(v)
	}

	courts, total, err := h.service.ListCourts(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrInvalidSport) {
			response.Error(c, http.StatusBadRequest, "INVALID_SPORT", "Unknown sport filter")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load courts")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"courts": courts,
		"total":  total,
	})
}

func (h *Handler) GetCourt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid court ID")
		return
	}

	court, err := h.service.GetCourt(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Court not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load court")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"court": court})
}

func (h *Handler) CreateCourt(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	court, err := h.service.CreateCourt(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSport):
			response.Error(c, http.StatusBadRequest, "INVALID_SPORT", "Unknown sport")
		case errors.Is(err, ErrInvalidCourt):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid court fields")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create court")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"court": court})
}

func (h *Handler) UpdateCourt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid court ID")
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	court, err := h.service.UpdateCourt(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Court not found")
		case errors.Is(err, ErrInvalidCourt):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid court fields")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update court")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"court": court})
}

// DeactivateCourt soft-deletes: the court disappears from public listings
// but stays referenced by historical bookings.
func (h *Handler) DeactivateCourt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid court ID")
		return
	}

	if err := h.service.SetCourtActive(c.Request.Context(), id, false); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Court not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deactivate court")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "active": false})
}

func (h *Handler) SetCourtActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid court ID")
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "active flag is required")
		return
	}

	if err := h.service.SetCourtActive(c.Request.Context(), id, *req.Active); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Court not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update court")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "active": *req.Active})
}
