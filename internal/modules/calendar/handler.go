package calendar

import (
	"net/http"

	"lashstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/calendar/week", h.Week)
	rg.PUT("/calendar/week", h.SaveWeek)
	rg.GET("/calendar/exceptions", h.ListExceptions)
	rg.POST("/calendar/exceptions", h.AddException)
	rg.DELETE("/calendar/exceptions/:id", h.RemoveException)
}

func (h *Handler) Week(c *gin.Context) {
	week, err := h.service.Week(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load weekly hours")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"days": week})
}

func (h *Handler) SaveWeek(c *gin.Context) {
	var req SaveWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	week, err := h.service.SaveWeek(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to save weekly hours")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"days": week})
}

func (h *Handler) ListExceptions(c *gin.Context) {
	exceptions, err := h.service.ListExceptions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list exceptions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exceptions": exceptions})
}

func (h *Handler) AddException(c *gin.Context) {
	var req AddExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	exception, err := h.service.AddException(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to add exception")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"exception": exception})
}

func (h *Handler) RemoveException(c *gin.Context) {
	if err := h.service.RemoveException(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to remove exception")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid calendar data")
	case ErrDuplicate:
		response.Error(c, http.StatusConflict, "DUPLICATE_DATE", "Date already has an exception")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Exception not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
