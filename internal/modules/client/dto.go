package client

import (
	"time"

	"lashstudio/internal/domain"
)

type UpsertClientRequest struct {
	Name       string            `json:"name" binding:"required"`
	Phone      string            `json:"phone"`
	EyeMapping string            `json:"eye_mapping"`
	Anamnesis  *domain.Anamnesis `json:"anamnesis,omitempty"`
}

type ClientView struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Phone      string            `json:"phone,omitempty"`
	EyeMapping string            `json:"eye_mapping,omitempty"`
	Anamnesis  *domain.Anamnesis `json:"anamnesis,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
