package domain

import "time"

// DayHours is the operating window for one weekday (0 = Sunday). At most one
// row per weekday; a missing row or Open=false means zero availability.
type DayHours struct {
	Weekday   int    `json:"weekday" gorm:"primaryKey" validate:"gte=0,lte=6"`
	Open      bool   `json:"open"`
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
}

// CalendarException marks a specific date fully closed (holiday, day off).
// Exceptions are closures only; they never open a day the weekly config has
// closed.
type CalendarException struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Date      string    `json:"date" gorm:"uniqueIndex" validate:"required"` // "2006-01-02"
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
