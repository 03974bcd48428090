package finance

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
	rg.GET("/finance/summary", h.MonthSummary)
}

// MonthSummary handles GET /finance/summary?year=2026&month=8. Defaults to
// the current month when the query params are absent.
func (h *Handler) MonthSummary(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid year")
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid month")
			return
		}
		month = parsed
	}

	summary, err := h.service.MonthSummary(c.Request.Context(), year, time.Month(month))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build summary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}
