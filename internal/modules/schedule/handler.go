package schedule

import (
	"net/http"
	"strconv"
	"time"

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
	rg.GET("/schedule/timeline", h.Timeline)
	rg.GET("/schedule/slots", h.Slots)
	rg.GET("/schedule/month-dates", h.MonthDates)
	rg.GET("/schedule/risk-flag", h.RiskFlag)

	rg.POST("/appointments", h.Create)
	rg.PUT("/appointments/:id", h.Reschedule)
	rg.PATCH("/appointments/:id/status", h.UpdateStatus)
	rg.DELETE("/appointments/:id", h.Delete)
}

func (h *Handler) Timeline(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}

	tl, err := h.service.DayTimeline(c.Request.Context(), date)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build timeline")
		return
	}
	response.Success(c, http.StatusOK, tl)
}

func (h *Handler) Slots(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	serviceID := c.Query("service_id")
	if serviceID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "service_id is required")
		return
	}

	slots, err := h.service.SuggestStartTimes(c.Request.Context(), date, serviceID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to suggest slots")
		}
		return
	}

	out := make([]string, 0, len(slots))
	for _, t := range slots {
		out = append(out, t.Format("15:04"))
	}
	response.Success(c, http.StatusOK, gin.H{"slots": out})
}

func (h *Handler) MonthDates(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be an integer")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be 1-12")
		return
	}

	dates, err := h.service.MonthDates(c.Request.Context(), year, time.Month(month))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list month dates")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dates": dates})
}

func (h *Handler) RiskFlag(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "client_id is required")
		return
	}

	flag, err := h.service.RiskFlag(c.Request.Context(), clientID, c.Query("service_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check client history")
		return
	}
	response.Success(c, http.StatusOK, flag)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create appointment")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Reschedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to reschedule appointment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to delete appointment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) dateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	// Parse in the studio timezone so the date does not shift across the
	// midnight boundary.
	date, err := time.ParseInLocation("2006-01-02", raw, h.service.cfg.Timezone)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment data")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "SCHEDULE_CONFLICT",
			"Time conflict: the schedule reserves a buffer between clients")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment or service not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
