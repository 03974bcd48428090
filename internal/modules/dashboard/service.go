package dashboard

import (
	"context"
	"time"

	"lashstudio/internal/config"
	"lashstudio/internal/domain"
	"lashstudio/internal/modules/schedule"
	"lashstudio/internal/repository"
)

// fullDayMinutes is the reference workload for the occupation rate: eight
// worked hours count as 100%.
const fullDayMinutes = 480.0

type AppointmentReader interface {
	ListRange(ctx context.Context, from, to time.Time) ([]repository.DayAppointment, error)
}

type ClientCounter interface {
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	appts   AppointmentReader
	clients ClientCounter
	cfg     *config.Config
}

func NewService(appts AppointmentReader, clients ClientCounter, cfg *config.Config) *Service {
	return &Service{appts: appts, clients: clients, cfg: cfg}
}

// Overview assembles the home-screen aggregates for "now".
func (s *Service) Overview(ctx context.Context, now time.Time) (*Overview, error) {
	now = now.In(s.cfg.Timezone)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.cfg.Timezone)
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.cfg.Timezone)
	monthEnd := monthStart.AddDate(0, 1, 0)

	clientCount, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}

	today, err := s.appts.ListRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	monthAppts, err := s.appts.ListRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	ov := &Overview{ClientCount: clientCount}

	workedMinutes := 0
	for _, a := range today {
		if a.Status == domain.AppointmentCancelled {
			continue
		}
		ov.TodayAppointments++
		minutes := int(schedule.EffectiveDuration(a.ServiceMinutes, s.cfg.FallbackServiceDuration()).Minutes())
		workedMinutes += minutes

		if a.Status == domain.AppointmentPending {
			ov.PendingConfirmations++
		}
		if a.StartTime.After(now) && (ov.NextAppointment == nil || a.StartTime.Before(ov.NextAppointment.StartTime)) {
			next := a
			ov.NextAppointment = &next
		}
	}
	ov.OccupationRate = float64(workedMinutes) / fullDayMinutes * 100
	if ov.OccupationRate > 100 {
		ov.OccupationRate = 100
	}

	for _, a := range monthAppts {
		if a.Status == domain.AppointmentCancelled {
			continue
		}
		if a.DepositPaid {
			ov.MonthRevenuePaid += a.DepositAmount
		}
		balance := a.FinalAmount - a.DepositAmount
		if a.Status == domain.AppointmentCompleted && a.Paid && balance > 0 {
			ov.MonthRevenuePaid += balance
		}
		// Predicted counts what the month should yield: captured totals for
		// completed work, catalog price for everything still on the books.
		if a.Status == domain.AppointmentCompleted {
			ov.MonthRevenuePredicted += a.FinalAmount
		} else {
			ov.MonthRevenuePredicted += a.ServicePrice
		}
	}

	return ov, nil
}
