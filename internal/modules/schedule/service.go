package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lashstudio/internal/config"
	"lashstudio/internal/domain"
	"lashstudio/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	appts    AppointmentRepository
	catalog  ServiceCatalog
	calendar CalendarConfig
	cfg      *config.Config
}

func NewService(appts AppointmentRepository, catalog ServiceCatalog, calendar CalendarConfig, cfg *config.Config) *Service {
	return &Service{
		appts:    appts,
		catalog:  catalog,
		calendar: calendar,
		cfg:      cfg,
	}
}

// DayTimeline builds the busy/free sequence for one calendar date. An empty
// Entries slice with Open=false means the studio is closed that day; callers
// must not read it as "fully booked".
func (s *Service) DayTimeline(ctx context.Context, date time.Time) (*DayTimeline, error) {
	date = date.In(s.cfg.Timezone)
	out := &DayTimeline{
		Date:    date.Format("2006-01-02"),
		Entries: []TimelineEntry{},
	}

	exc, err := s.calendar.FindException(ctx, out.Date)
	if err != nil {
		return nil, err
	}
	if exc != nil {
		if s.cfg.EnforceCalendarExceptions {
			out.ClosedReason = exc.Reason
			if out.ClosedReason == "" {
				out.ClosedReason = "calendar exception"
			}
			return out, nil
		}
		// Historical behavior: closures are informational only. Surface the
		// note so the operator sees the day is nominally blocked.
		out.ExceptionNote = exc.Reason
	}

	dh, err := s.calendar.GetByWeekday(ctx, int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	if dh == nil || !dh.Open {
		return out, nil
	}

	dayStart, dayEnd, err := s.operatingWindow(date, dh)
	if err != nil {
		return nil, err
	}

	rows, err := s.daySnapshot(ctx, date)
	if err != nil {
		return nil, err
	}

	segments := BuildTimeline(dayStart, dayEnd, s.toCoreAppointments(rows), s.cfg.Buffer())

	byID := make(map[string]*repository.DayAppointment, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}

	out.Open = true
	out.StartTime = dh.StartTime
	out.EndTime = dh.EndTime
	out.Entries = make([]TimelineEntry, 0, len(segments))
	for _, seg := range segments {
		entry := TimelineEntry{
			Segment:         seg,
			DurationMinutes: int(seg.Duration() / time.Minute),
		}
		if seg.Kind == SegmentBusy {
			entry.Appointment = byID[seg.AppointmentID]
		}
		out.Entries = append(out.Entries, entry)
	}
	return out, nil
}

// SuggestStartTimes enumerates valid start instants for the given service on
// the given date. A closed day yields an empty slice, not an error.
func (s *Service) SuggestStartTimes(ctx context.Context, date time.Time, serviceID string) ([]time.Time, error) {
	svc, err := s.catalog.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	tl, err := s.DayTimeline(ctx, date)
	if err != nil {
		return nil, err
	}
	if !tl.Open {
		return []time.Time{}, nil
	}

	segments := make([]Segment, 0, len(tl.Entries))
	for _, e := range tl.Entries {
		segments = append(segments, e.Segment)
	}

	dur := EffectiveDuration(svc.DurationMinutes, s.cfg.FallbackServiceDuration())
	return SuggestSlots(segments, dur, s.cfg.SlotStep()), nil
}

// Create books a new appointment after the conflict pre-check. On PostgreSQL
// the write additionally runs into the no-overlap exclusion constraint, which
// closes the race between two concurrent schedulers.
func (s *Service) Create(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	start, err := s.parseLocal(req.Date, req.Time)
	if err != nil {
		return nil, ErrValidation
	}

	svc, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	dur := EffectiveDuration(svc.DurationMinutes, s.cfg.FallbackServiceDuration())

	rows, err := s.daySnapshot(ctx, start)
	if err != nil {
		return nil, err
	}
	if HasConflict(start, dur, s.toCoreAppointments(rows), s.cfg.Buffer(), "") {
		return nil, ErrConflict
	}

	a := &domain.Appointment{
		ID:          uuid.NewString(),
		ClientID:    req.ClientID,
		ServiceID:   req.ServiceID,
		StartTime:   start,
		BufferedEnd: start.Add(dur + s.cfg.Buffer()),
		Status:      domain.AppointmentPending,
	}
	if req.Deposit != nil && req.Deposit.Amount > 0 {
		a.DepositAmount = req.Deposit.Amount
		a.DepositMethod = req.Deposit.Method
		a.DepositPaid = true
	}

	if err := s.appts.Create(ctx, a); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return a, nil
}

// Reschedule moves an existing appointment, excluding it from its own
// conflict comparison so an in-place edit never collides with itself.
func (s *Service) Reschedule(ctx context.Context, id string, req RescheduleRequest) (*domain.Appointment, error) {
	a, err := s.appts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	start, err := s.parseLocal(req.Date, req.Time)
	if err != nil {
		return nil, ErrValidation
	}

	svc, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	dur := EffectiveDuration(svc.DurationMinutes, s.cfg.FallbackServiceDuration())

	rows, err := s.daySnapshot(ctx, start)
	if err != nil {
		return nil, err
	}
	if HasConflict(start, dur, s.toCoreAppointments(rows), s.cfg.Buffer(), id) {
		return nil, ErrConflict
	}

	a.ClientID = req.ClientID
	a.ServiceID = req.ServiceID
	a.StartTime = start
	a.BufferedEnd = start.Add(dur + s.cfg.Buffer())

	if err := s.appts.Update(ctx, a); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return a, nil
}

// UpdateStatus applies a user-driven lifecycle transition. Moving to
// completed captures the payment: the stored final amount is the deposit on
// file plus the balance collected now, and "Agendado" (pay later) leaves the
// appointment unpaid.
func (s *Service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*domain.Appointment, error) {
	status, ok := domain.NormalizeStatus(req.Status)
	if !ok {
		return nil, ErrValidation
	}

	a, err := s.appts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if status == domain.AppointmentCompleted {
		if req.Payment == nil {
			return nil, ErrValidation
		}
		paymentDate := time.Now().In(s.cfg.Timezone)
		if req.Payment.Date != "" {
			paymentDate, err = time.ParseInLocation("2006-01-02", req.Payment.Date, s.cfg.Timezone)
			if err != nil {
				return nil, ErrValidation
			}
		}
		total := a.DepositAmount + req.Payment.Amount
		paid := req.Payment.Method != domain.PaymentScheduled
		if err := s.appts.CompletePayment(ctx, id, total, req.Payment.Method, paymentDate, paid); err != nil {
			return nil, err
		}
	} else {
		if err := s.appts.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
	}

	return s.appts.GetByID(ctx, id)
}

// Delete removes the appointment permanently. The confirmation step lives in
// the caller; there is no soft delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.appts.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.appts.Delete(ctx, id)
}

// RiskFlag reports whether the client has a no-show history and, when a
// service is given, the suggested deposit (a configurable fraction of the
// price). This is advisory: the operator can edit or skip the deposit.
func (s *Service) RiskFlag(ctx context.Context, clientID, serviceID string) (*RiskFlag, error) {
	cnt, err := s.appts.CountNoShows(ctx, clientID)
	if err != nil {
		return nil, err
	}
	flag := &RiskFlag{HasNoShowHistory: cnt > 0}
	if flag.HasNoShowHistory && serviceID != "" {
		svc, err := s.catalog.GetByID(ctx, serviceID)
		if err == nil {
			flag.SuggestedDeposit = svc.Price * s.cfg.DepositFraction
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return flag, nil
}

// MonthDates returns the distinct dates in the given month that have at
// least one appointment, for the calendar dot indicators.
func (s *Service) MonthDates(ctx context.Context, year int, month time.Month) ([]string, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, s.cfg.Timezone)
	to := from.AddDate(0, 1, 0)
	rows, err := s.appts.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, r := range rows {
		d := r.StartTime.In(s.cfg.Timezone).Format("2006-01-02")
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	return dates, nil
}

func (s *Service) daySnapshot(ctx context.Context, at time.Time) ([]repository.DayAppointment, error) {
	at = at.In(s.cfg.Timezone)
	from := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, s.cfg.Timezone)
	return s.appts.ListRange(ctx, from, from.AddDate(0, 0, 1))
}

func (s *Service) toCoreAppointments(rows []repository.DayAppointment) []Appointment {
	out := make([]Appointment, 0, len(rows))
	for _, r := range rows {
		out = append(out, Appointment{
			ID:       r.ID,
			Start:    r.StartTime.In(s.cfg.Timezone),
			Duration: EffectiveDuration(r.ServiceMinutes, s.cfg.FallbackServiceDuration()),
			Status:   r.Status,
		})
	}
	return out
}

func (s *Service) operatingWindow(date time.Time, dh *domain.DayHours) (time.Time, time.Time, error) {
	start, err := clockOn(date, dh.StartTime, s.cfg.Timezone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := clockOn(date, dh.EndTime, s.cfg.Timezone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (s *Service) parseLocal(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, s.cfg.Timezone)
}

func clockOn(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid operating hours %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_no_double_booking"
	}
	return false
}
