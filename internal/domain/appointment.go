package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// NormalizeStatus maps a stored status value onto the closed enumeration.
// Unknown values fall back to pending; callers at the persistence boundary
// should log when ok is false.
func NormalizeStatus(raw string) (AppointmentStatus, bool) {
	switch AppointmentStatus(raw) {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted,
		AppointmentCancelled, AppointmentNoShow:
		return AppointmentStatus(raw), true
	}
	return AppointmentPending, false
}

// Payment methods are free-form operator input; these are the values the
// booking and payment forms offer.
const (
	PaymentPix       = "Pix"
	PaymentCash      = "Dinheiro"
	PaymentCard      = "Cartão"
	PaymentDebit     = "Débito"
	PaymentCredit    = "Crédito"
	PaymentScheduled = "Agendado"
)

type Appointment struct {
	ID        string            `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID  string            `json:"client_id" gorm:"type:uuid;index" validate:"required"`
	ServiceID string            `json:"service_id" gorm:"type:uuid;index" validate:"required"`
	StartTime time.Time         `json:"start_time" gorm:"index" validate:"required"`
	Status    AppointmentStatus `json:"status"`

	// Occupied-plus-buffer end, denormalized at write time so the storage
	// layer can enforce a no-overlap range constraint. Reads always derive
	// the occupied span from the referenced service's current duration.
	BufferedEnd time.Time `json:"-"`

	DepositAmount float64 `json:"deposit_amount,omitempty"`
	DepositMethod string  `json:"deposit_method,omitempty"`
	DepositPaid   bool    `json:"deposit_paid,omitempty"`

	FinalAmount   float64    `json:"final_amount,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	Paid          bool       `json:"paid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client  *Client            `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Service *ServiceDefinition `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}
