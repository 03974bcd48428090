package repository

import (
	"context"
	"errors"
	"time"

	"lashstudio/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CalendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

type dayHoursModel struct {
	Weekday   int    `gorm:"column:weekday;primaryKey"`
	Open      bool   `gorm:"column:open"`
	StartTime string `gorm:"column:start_time"`
	EndTime   string `gorm:"column:end_time"`
}

func (dayHoursModel) TableName() string { return "day_hours" }

type calendarExceptionModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Date      string    `gorm:"column:date"`
	Reason    *string   `gorm:"column:reason"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (calendarExceptionModel) TableName() string { return "calendar_exceptions" }

func toDomainDayHours(m dayHoursModel) domain.DayHours {
	return domain.DayHours{
		Weekday:   m.Weekday,
		Open:      m.Open,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
	}
}

func toDomainException(m calendarExceptionModel) *domain.CalendarException {
	var reason string
	if m.Reason != nil {
		reason = *m.Reason
	}
	return &domain.CalendarException{
		ID:        m.ID,
		Date:      m.Date,
		Reason:    reason,
		CreatedAt: m.CreatedAt,
	}
}

func (r *CalendarRepository) GetWeek(ctx context.Context) ([]domain.DayHours, error) {
	var models []dayHoursModel
	tx := r.db.WithContext(ctx).Order("weekday").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.DayHours, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainDayHours(m))
	}
	return out, nil
}

// GetByWeekday returns nil (no error) when the weekday has no row; callers
// treat that as closed.
func (r *CalendarRepository) GetByWeekday(ctx context.Context, weekday int) (*domain.DayHours, error) {
	var m dayHoursModel
	tx := r.db.WithContext(ctx).Where("weekday = ?", weekday).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	d := toDomainDayHours(m)
	return &d, nil
}

// UpsertWeek replaces the weekly schedule, one row per weekday.
func (r *CalendarRepository) UpsertWeek(ctx context.Context, week []domain.DayHours) error {
	models := make([]dayHoursModel, 0, len(week))
	for _, d := range week {
		models = append(models, dayHoursModel{
			Weekday:   d.Weekday,
			Open:      d.Open,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "weekday"}},
			UpdateAll: true,
		}).
		Create(&models).Error
}

func (r *CalendarRepository) ListExceptions(ctx context.Context) ([]domain.CalendarException, error) {
	var models []calendarExceptionModel
	tx := r.db.WithContext(ctx).Order("date").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.CalendarException, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainException(m))
	}
	return out, nil
}

// FindException returns nil (no error) when the date has no closure.
func (r *CalendarRepository) FindException(ctx context.Context, date string) (*domain.CalendarException, error) {
	var m calendarExceptionModel
	tx := r.db.WithContext(ctx).Where("date = ?", date).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainException(m), nil
}

func (r *CalendarRepository) AddException(ctx context.Context, e *domain.CalendarException) error {
	var reason *string
	if e.Reason != "" {
		v := e.Reason
		reason = &v
	}
	m := calendarExceptionModel{
		ID:        e.ID,
		Date:      e.Date,
		Reason:    reason,
		CreatedAt: e.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainException(m)
	return nil
}

func (r *CalendarRepository) RemoveException(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&calendarExceptionModel{}).Error
}
