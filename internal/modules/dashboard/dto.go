package dashboard

import "lashstudio/internal/repository"

type Overview struct {
	ClientCount           int64                      `json:"client_count"`
	TodayAppointments     int                        `json:"today_appointments"`
	PendingConfirmations  int                        `json:"pending_confirmations"`
	OccupationRate        float64                    `json:"occupation_rate"`
	MonthRevenuePaid      float64                    `json:"month_revenue_paid"`
	MonthRevenuePredicted float64                    `json:"month_revenue_predicted"`
	NextAppointment       *repository.DayAppointment `json:"next_appointment,omitempty"`
}
