package calendar

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"lashstudio/internal/domain"
	"lashstudio/internal/pkg/validator"
	"lashstudio/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("calendar entry not found")
	ErrDuplicate  = errors.New("date already has an exception")
)

type Service struct {
	calendar *repository.CalendarRepository
}

func NewService(calendar *repository.CalendarRepository) *Service {
	return &Service{calendar: calendar}
}

// Week returns the full seven-day schedule. Weekdays without a stored row are
// filled in as closed so the caller always sees indices 0 through 6.
func (s *Service) Week(ctx context.Context) ([]domain.DayHours, error) {
	stored, err := s.calendar.GetWeek(ctx)
	if err != nil {
		return nil, err
	}

	week := make([]domain.DayHours, 7)
	for i := range week {
		week[i] = domain.DayHours{Weekday: i, Open: false}
	}
	for _, d := range stored {
		if d.Weekday >= 0 && d.Weekday <= 6 {
			week[d.Weekday] = d
		}
	}
	return week, nil
}

// SaveWeek validates and replaces the weekly operating hours. Open days must
// carry a valid HH:MM window with start strictly before end.
func (s *Service) SaveWeek(ctx context.Context, req SaveWeekRequest) ([]domain.DayHours, error) {
	if len(req.Days) == 0 {
		return nil, ErrValidation
	}

	seen := make(map[int]bool, len(req.Days))
	week := make([]domain.DayHours, 0, len(req.Days))
	for _, d := range req.Days {
		if seen[d.Weekday] {
			return nil, ErrValidation
		}
		seen[d.Weekday] = true

		if errs := validator.Validate(domain.DayHours{Weekday: d.Weekday}); errs != nil {
			return nil, ErrValidation
		}
		if d.Open {
			start, okStart := parseClock(d.StartTime)
			end, okEnd := parseClock(d.EndTime)
			if !okStart || !okEnd || !start.Before(end) {
				return nil, ErrValidation
			}
		}
		week = append(week, domain.DayHours{
			Weekday:   d.Weekday,
			Open:      d.Open,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	if err := s.calendar.UpsertWeek(ctx, week); err != nil {
		return nil, err
	}
	return s.Week(ctx)
}

func (s *Service) ListExceptions(ctx context.Context) ([]domain.CalendarException, error) {
	return s.calendar.ListExceptions(ctx)
}

func (s *Service) AddException(ctx context.Context, req AddExceptionRequest) (*domain.CalendarException, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrValidation
	}

	existing, err := s.calendar.FindException(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	e := &domain.CalendarException{
		ID:        uuid.NewString(),
		Date:      req.Date,
		Reason:    strings.TrimSpace(req.Reason),
		CreatedAt: time.Now(),
	}
	if err := s.calendar.AddException(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) RemoveException(ctx context.Context, id string) error {
	all, err := s.calendar.ListExceptions(ctx)
	if err != nil {
		return err
	}
	for _, e := range all {
		if e.ID == id {
			return s.calendar.RemoveException(ctx, id)
		}
	}
	return ErrNotFound
}

// parseClock parses "HH:MM" into a comparable time on the zero date.
func parseClock(v string) (time.Time, bool) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return time.Time{}, false
	}
	return time.Date(1, 1, 1, h, m, 0, 0, time.UTC), true
}
