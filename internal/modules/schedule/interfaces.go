package schedule

import (
	"context"
	"time"

	"lashstudio/internal/domain"
	"lashstudio/internal/repository"
)

// AppointmentRepository defines the persistence operations the scheduling
// service needs.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	CompletePayment(ctx context.Context, id string, finalAmount float64, method string, paymentDate time.Time, paid bool) error
	Delete(ctx context.Context, id string) error
	ListRange(ctx context.Context, from, to time.Time) ([]repository.DayAppointment, error)
	CountNoShows(ctx context.Context, clientID string) (int64, error)
}

// ServiceCatalog resolves service references to their current definition.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceDefinition, error)
}

// CalendarConfig supplies the weekly operating hours and closure exceptions.
type CalendarConfig interface {
	GetByWeekday(ctx context.Context, weekday int) (*domain.DayHours, error)
	FindException(ctx context.Context, date string) (*domain.CalendarException, error)
}
