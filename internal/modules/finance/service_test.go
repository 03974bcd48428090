package finance

import (
	"context"
	"testing"
	"time"

	"lashstudio/internal/domain"
	"lashstudio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAppointmentReader struct {
	mock.Mock
}

func (m *MockAppointmentReader) ListRange(ctx context.Context, from, to time.Time) ([]repository.DayAppointment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DayAppointment), args.Error(1)
}

func day(d, hour int) time.Time {
	return time.Date(2026, 8, d, hour, 0, 0, 0, time.UTC)
}

func TestMonthSummaryRollup(t *testing.T) {
	reader := new(MockAppointmentReader)
	svc := NewService(reader, time.UTC)
	ctx := context.Background()

	paidDate := day(10, 12)
	reader.On("ListRange", ctx, day(1, 0), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)).
		Return([]repository.DayAppointment{
			// Completed and paid: deposit 80 + balance 120.
			{
				ID: "a1", StartTime: day(10, 10), Status: domain.AppointmentCompleted,
				ClientName: "Ana", ServiceName: "Volume Russo",
				DepositAmount: 80, DepositPaid: true, DepositMethod: domain.PaymentPix,
				FinalAmount: 200, Paid: true, PaymentMethod: domain.PaymentCash, PaymentDate: &paidDate,
			},
			// Completed, pay later: balance 150 pending.
			{
				ID: "a2", StartTime: day(12, 14), Status: domain.AppointmentCompleted,
				ClientName: "Beatriz", ServiceName: "Manutenção",
				FinalAmount: 150, Paid: false, PaymentMethod: domain.PaymentScheduled,
			},
			// Upcoming with a paid deposit only.
			{
				ID: "a3", StartTime: day(20, 9), Status: domain.AppointmentConfirmed,
				ClientName: "Carla", ServiceName: "Extensão Clássica",
				DepositAmount: 50, DepositPaid: true, DepositMethod: domain.PaymentPix,
			},
			// Cancelled: ignored entirely.
			{
				ID: "a4", StartTime: day(22, 9), Status: domain.AppointmentCancelled,
				DepositAmount: 50, DepositPaid: true,
			},
		}, nil)

	summary, err := svc.MonthSummary(ctx, 2026, time.August)

	assert.NoError(t, err)
	assert.Equal(t, 250.0, summary.Received) // 80 + 120 + 50
	assert.Equal(t, 150.0, summary.Pending)
	assert.Equal(t, 400.0, summary.Forecast)
	assert.Len(t, summary.Transactions, 4)

	// Newest first.
	for i := 1; i < len(summary.Transactions); i++ {
		assert.False(t, summary.Transactions[i].Date.After(summary.Transactions[i-1].Date))
	}
}

func TestMonthSummaryBalanceNeverNegative(t *testing.T) {
	reader := new(MockAppointmentReader)
	svc := NewService(reader, time.UTC)
	ctx := context.Background()

	// Deposit larger than the captured final amount must not subtract.
	reader.On("ListRange", ctx, mock.Anything, mock.Anything).
		Return([]repository.DayAppointment{
			{
				ID: "a1", StartTime: day(5, 10), Status: domain.AppointmentCompleted,
				DepositAmount: 100, DepositPaid: true,
				FinalAmount: 80, Paid: true,
			},
		}, nil)

	summary, err := svc.MonthSummary(ctx, 2026, time.August)

	assert.NoError(t, err)
	assert.Equal(t, 100.0, summary.Received)
	assert.Zero(t, summary.Pending)
	assert.Len(t, summary.Transactions, 1)
	assert.Equal(t, TransactionDeposit, summary.Transactions[0].Kind)
}

func TestMonthSummaryEmptyMonth(t *testing.T) {
	reader := new(MockAppointmentReader)
	svc := NewService(reader, time.UTC)
	ctx := context.Background()

	reader.On("ListRange", ctx, mock.Anything, mock.Anything).
		Return([]repository.DayAppointment{}, nil)

	summary, err := svc.MonthSummary(ctx, 2026, time.February)

	assert.NoError(t, err)
	assert.Zero(t, summary.Received)
	assert.Zero(t, summary.Forecast)
	assert.NotNil(t, summary.Transactions)
	assert.Empty(t, summary.Transactions)
}
