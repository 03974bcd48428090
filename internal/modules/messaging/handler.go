package messaging

import (
	"net/http"

	"lashstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/messages/confirmation", h.Confirmation)
	rg.POST("/messages/anticipation", h.Anticipation)
	rg.POST("/messages/payment-reminder", h.PaymentReminder)
}

type ConfirmationRequest struct {
	Phone       string `json:"phone" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	ServiceName string `json:"service_name" binding:"required"`
}

type AnticipationRequest struct {
	Phone      string `json:"phone" binding:"required"`
	ClientName string `json:"client_name" binding:"required"`
}

type PaymentReminderRequest struct {
	Phone       string  `json:"phone" binding:"required"`
	ClientName  string  `json:"client_name" binding:"required"`
	ServiceName string  `json:"service_name" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

func (h *Handler) Confirmation(c *gin.Context) {
	var req ConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.writeLink(c, req.Phone, ConfirmationMessage(req.ClientName, req.StartTime, req.ServiceName))
}

func (h *Handler) Anticipation(c *gin.Context) {
	var req AnticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.writeLink(c, req.Phone, AnticipationMessage(req.ClientName))
}

func (h *Handler) PaymentReminder(c *gin.Context) {
	var req PaymentReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.writeLink(c, req.Phone, PaymentReminderMessage(req.ClientName, req.ServiceName, req.Amount))
}

func (h *Handler) writeLink(c *gin.Context, phone, text string) {
	link, err := WhatsAppLink(phone, text)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_PHONE", "Client has no phone number")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"link": link})
}
