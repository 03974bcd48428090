package schedule

import "lashstudio/internal/repository"

type DepositRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
	Method string  `json:"method"`
}

type CreateAppointmentRequest struct {
	ClientID  string          `json:"client_id" binding:"required"`
	ServiceID string          `json:"service_id" binding:"required"`
	Date      string          `json:"date" binding:"required"` // "2006-01-02"
	Time      string          `json:"time" binding:"required"` // "15:04"
	Deposit   *DepositRequest `json:"deposit,omitempty"`
}

type RescheduleRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

// PaymentCapture is required when a status update moves an appointment to
// completed. Amount is the balance collected on the day; the deposit already
// on file is added to it before storing the final amount.
type PaymentCapture struct {
	Amount float64 `json:"amount" binding:"gte=0"`
	Method string  `json:"method" binding:"required"`
	Date   string  `json:"date,omitempty"` // "2006-01-02", defaults to today
}

type UpdateStatusRequest struct {
	Status  string          `json:"status" binding:"required"`
	Payment *PaymentCapture `json:"payment,omitempty"`
}

// TimelineEntry is a timeline segment enriched with the occupying
// appointment's joined data for busy segments.
type TimelineEntry struct {
	Segment
	DurationMinutes int                        `json:"duration_minutes"`
	Appointment     *repository.DayAppointment `json:"appointment,omitempty"`
}

type DayTimeline struct {
	Date          string          `json:"date"`
	Open          bool            `json:"open"`
	StartTime     string          `json:"start_time,omitempty"`
	EndTime       string          `json:"end_time,omitempty"`
	ClosedReason  string          `json:"closed_reason,omitempty"`
	ExceptionNote string          `json:"exception_note,omitempty"`
	Entries       []TimelineEntry `json:"entries"`
}

type RiskFlag struct {
	HasNoShowHistory bool    `json:"has_no_show_history"`
	SuggestedDeposit float64 `json:"suggested_deposit,omitempty"`
}
