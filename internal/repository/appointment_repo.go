package repository

import (
	"context"
	"log"
	"time"

	"lashstudio/internal/domain"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID            string     `gorm:"column:id;primaryKey"`
	ClientID      string     `gorm:"column:client_id"`
	ServiceID     string     `gorm:"column:service_id"`
	StartTime     time.Time  `gorm:"column:start_time"`
	BufferedEnd   time.Time  `gorm:"column:buffered_end"`
	Status        string     `gorm:"column:status"`
	DepositAmount float64    `gorm:"column:deposit_amount"`
	DepositMethod *string    `gorm:"column:deposit_method"`
	DepositPaid   bool       `gorm:"column:deposit_paid"`
	FinalAmount   float64    `gorm:"column:final_amount"`
	PaymentMethod *string    `gorm:"column:payment_method"`
	PaymentDate   *time.Time `gorm:"column:payment_date"`
	Paid          bool       `gorm:"column:paid"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) *domain.Appointment {
	status, ok := domain.NormalizeStatus(m.Status)
	if !ok {
		log.Printf("appointment %s: unknown status %q, treating as pending", m.ID, m.Status)
	}

	var depositMethod, paymentMethod string
	if m.DepositMethod != nil {
		depositMethod = *m.DepositMethod
	}
	if m.PaymentMethod != nil {
		paymentMethod = *m.PaymentMethod
	}

	return &domain.Appointment{
		ID:            m.ID,
		ClientID:      m.ClientID,
		ServiceID:     m.ServiceID,
		StartTime:     m.StartTime,
		BufferedEnd:   m.BufferedEnd,
		Status:        status,
		DepositAmount: m.DepositAmount,
		DepositMethod: depositMethod,
		DepositPaid:   m.DepositPaid,
		FinalAmount:   m.FinalAmount,
		PaymentMethod: paymentMethod,
		PaymentDate:   m.PaymentDate,
		Paid:          m.Paid,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toAppointmentModel(a *domain.Appointment) appointmentModel {
	var depositMethod, paymentMethod *string
	if a.DepositMethod != "" {
		v := a.DepositMethod
		depositMethod = &v
	}
	if a.PaymentMethod != "" {
		v := a.PaymentMethod
		paymentMethod = &v
	}

	return appointmentModel{
		ID:            a.ID,
		ClientID:      a.ClientID,
		ServiceID:     a.ServiceID,
		StartTime:     a.StartTime,
		BufferedEnd:   a.BufferedEnd,
		Status:        string(a.Status),
		DepositAmount: a.DepositAmount,
		DepositMethod: depositMethod,
		DepositPaid:   a.DepositPaid,
		FinalAmount:   a.FinalAmount,
		PaymentMethod: paymentMethod,
		PaymentDate:   a.PaymentDate,
		Paid:          a.Paid,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// DayAppointment is the read model for range queries: an appointment joined
// with its client and the service's duration and price at read time.
type DayAppointment struct {
	ID             string
	StartTime      time.Time
	Status         domain.AppointmentStatus
	ClientID       string
	ClientName     string
	ClientPhone    string
	ServiceID      string
	ServiceName    string
	ServiceMinutes int
	ServicePrice   float64
	DepositAmount  float64
	DepositMethod  string
	DepositPaid    bool
	FinalAmount    float64
	PaymentMethod  string
	PaymentDate    *time.Time
	Paid           bool
}

type dayAppointmentRow struct {
	ID             string     `gorm:"column:id"`
	StartTime      time.Time  `gorm:"column:start_time"`
	Status         string     `gorm:"column:status"`
	ClientID       string     `gorm:"column:client_id"`
	ClientName     *string    `gorm:"column:client_name"`
	ClientPhone    *string    `gorm:"column:client_phone"`
	ServiceID      string     `gorm:"column:service_id"`
	ServiceName    *string    `gorm:"column:service_name"`
	ServiceMinutes *int       `gorm:"column:service_minutes"`
	ServicePrice   *float64   `gorm:"column:service_price"`
	DepositAmount  float64    `gorm:"column:deposit_amount"`
	DepositMethod  *string    `gorm:"column:deposit_method"`
	DepositPaid    bool       `gorm:"column:deposit_paid"`
	FinalAmount    float64    `gorm:"column:final_amount"`
	PaymentMethod  *string    `gorm:"column:payment_method"`
	PaymentDate    *time.Time `gorm:"column:payment_date"`
	Paid           bool       `gorm:"column:paid"`
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	m := toAppointmentModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAppointment(m)
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var m appointmentModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAppointment(m), nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	m := toAppointmentModel(a)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	return r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// CompletePayment marks the appointment completed and records the captured
// payment in one write.
func (r *AppointmentRepository) CompletePayment(ctx context.Context, id string, finalAmount float64, method string, paymentDate time.Time, paid bool) error {
	return r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         string(domain.AppointmentCompleted),
			"final_amount":   finalAmount,
			"payment_method": method,
			"payment_date":   paymentDate,
			"paid":           paid,
		}).Error
}

// ResyncBufferedEnds recomputes the denormalized buffered_end of every
// non-cancelled appointment referencing the service, after a catalog duration
// edit. Without this the Postgres exclusion guard would keep enforcing ranges
// computed from the old duration while reads use the new one.
func (r *AppointmentRepository) ResyncBufferedEnds(ctx context.Context, serviceID string, span time.Duration) error {
	var models []appointmentModel
	tx := r.db.WithContext(ctx).
		Where("service_id = ? AND status <> ?", serviceID, string(domain.AppointmentCancelled)).
		Find(&models)
	if tx.Error != nil {
		return tx.Error
	}
	for _, m := range models {
		err := r.db.WithContext(ctx).
			Model(&appointmentModel{}).
			Where("id = ?", m.ID).
			Update("buffered_end", m.StartTime.Add(span)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&appointmentModel{}).Error
}

// ListRange returns appointments with start_time in [from, to), joined with
// client and service data. Left joins keep rows whose service reference is
// broken; the scheduling core substitutes a fallback duration for those.
func (r *AppointmentRepository) ListRange(ctx context.Context, from, to time.Time) ([]DayAppointment, error) {
	q := `
SELECT a.id, a.start_time, a.status, a.client_id, a.service_id,
       c.name  AS client_name,
       c.phone AS client_phone,
       s.name  AS service_name,
       s.duration_minutes AS service_minutes,
       s.price AS service_price,
       a.deposit_amount, a.deposit_method, a.deposit_paid,
       a.final_amount, a.payment_method, a.payment_date, a.paid
FROM appointments a
LEFT JOIN clients  c ON c.id = a.client_id
LEFT JOIN services s ON s.id = a.service_id
WHERE a.start_time >= ? AND a.start_time < ?
ORDER BY a.start_time
`
	var rows []dayAppointmentRow
	tx := r.db.WithContext(ctx).Raw(q, from, to).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]DayAppointment, 0, len(rows))
	for _, row := range rows {
		status, ok := domain.NormalizeStatus(row.Status)
		if !ok {
			log.Printf("appointment %s: unknown status %q, treating as pending", row.ID, row.Status)
		}
		out = append(out, DayAppointment{
			ID:             row.ID,
			StartTime:      row.StartTime,
			Status:         status,
			ClientID:       row.ClientID,
			ClientName:     strOrEmpty(row.ClientName),
			ClientPhone:    strOrEmpty(row.ClientPhone),
			ServiceID:      row.ServiceID,
			ServiceName:    strOrEmpty(row.ServiceName),
			ServiceMinutes: intOrZero(row.ServiceMinutes),
			ServicePrice:   floatOrZero(row.ServicePrice),
			DepositAmount:  row.DepositAmount,
			DepositMethod:  strOrEmpty(row.DepositMethod),
			DepositPaid:    row.DepositPaid,
			FinalAmount:    row.FinalAmount,
			PaymentMethod:  strOrEmpty(row.PaymentMethod),
			PaymentDate:    row.PaymentDate,
			Paid:           row.Paid,
		})
	}
	return out, nil
}

func (r *AppointmentRepository) CountNoShows(ctx context.Context, clientID string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("client_id = ? AND status = ?", clientID, string(domain.AppointmentNoShow)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
