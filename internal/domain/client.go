package domain

import "time"

// Anamnesis is the medical intake form filled on registration. Stored as a
// JSON document alongside the client record.
type Anamnesis struct {
	Allergies     string `json:"allergies,omitempty"`
	OcularIssues  string `json:"ocular_issues,omitempty"`
	Pregnant      bool   `json:"pregnant,omitempty"`
	ContactLenses bool   `json:"contact_lenses,omitempty"`
	SleepSide     string `json:"sleep_side,omitempty"`
	HealthNotes   string `json:"health_notes,omitempty"`
}

type Client struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" validate:"required"`
	Phone      string    `json:"phone,omitempty"`
	EyeMapping string    `json:"eye_mapping,omitempty" gorm:"type:text"`
	Anamnesis  []byte    `json:"-" gorm:"type:jsonb"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
