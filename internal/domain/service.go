package domain

import "time"

// ServiceDefinition is a catalog entry. Appointments reference it; its
// duration is read at timeline-build time, never snapshotted, so editing a
// duration retroactively changes every occupied span that references it.
type ServiceDefinition struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Price           float64   `json:"price" validate:"gte=0"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName pins the table to "services"; the repository layer and its raw
// SQL joins read that name, not GORM's default pluralization.
func (ServiceDefinition) TableName() string { return "services" }
