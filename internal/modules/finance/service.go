package finance

import (
	"context"
	"sort"
	"time"

	"lashstudio/internal/domain"
	"lashstudio/internal/repository"
)

type AppointmentReader interface {
	ListRange(ctx context.Context, from, to time.Time) ([]repository.DayAppointment, error)
}

type Service struct {
	appts AppointmentReader
	loc   *time.Location
}

func NewService(appts AppointmentReader, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{appts: appts, loc: loc}
}

// MonthSummary rolls up one calendar month. Received counts paid deposits
// plus the remaining balance of completed-and-paid appointments. Pending is
// the balance of completed work scheduled for later payment ("Agendado").
func (s *Service) MonthSummary(ctx context.Context, year int, month time.Month) (*MonthSummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 1, 0)

	appts, err := s.appts.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &MonthSummary{
		Year:         year,
		Month:        int(month),
		Transactions: make([]Transaction, 0, len(appts)),
	}

	for _, a := range appts {
		if a.Status == domain.AppointmentCancelled {
			continue
		}

		// Deposits carry no capture date of their own; they are booked on
		// the appointment date.
		if a.DepositPaid && a.DepositAmount > 0 {
			summary.Received += a.DepositAmount
			summary.Transactions = append(summary.Transactions, Transaction{
				AppointmentID: a.ID,
				ClientName:    a.ClientName,
				ServiceName:   a.ServiceName,
				Kind:          TransactionDeposit,
				Amount:        a.DepositAmount,
				Method:        a.DepositMethod,
				Date:          a.StartTime,
			})
		}

		if a.Status != domain.AppointmentCompleted {
			continue
		}

		balance := a.FinalAmount - a.DepositAmount
		if balance < 0 {
			balance = 0
		}
		if balance == 0 {
			continue
		}

		date := a.StartTime
		if a.PaymentDate != nil {
			date = *a.PaymentDate
		}
		if a.Paid {
			summary.Received += balance
			summary.Transactions = append(summary.Transactions, Transaction{
				AppointmentID: a.ID,
				ClientName:    a.ClientName,
				ServiceName:   a.ServiceName,
				Kind:          TransactionBalance,
				Amount:        balance,
				Method:        a.PaymentMethod,
				Date:          date,
			})
		} else {
			summary.Pending += balance
			summary.Transactions = append(summary.Transactions, Transaction{
				AppointmentID: a.ID,
				ClientName:    a.ClientName,
				ServiceName:   a.ServiceName,
				Kind:          TransactionPending,
				Amount:        balance,
				Method:        a.PaymentMethod,
				Date:          date,
			})
		}
	}

	summary.Forecast = summary.Received + summary.Pending

	sort.SliceStable(summary.Transactions, func(i, j int) bool {
		return summary.Transactions[i].Date.After(summary.Transactions[j].Date)
	})
	return summary, nil
}
