package main

import (
	"log"
	"time"

	"lashstudio/internal/config"
	"lashstudio/internal/database"
	"lashstudio/internal/domain"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Client{},
		&domain.ServiceDefinition{},
		&domain.Appointment{},
		&domain.DayHours{},
		&domain.CalendarException{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	if database.IsPostgres(db) {
		ensureOverlapGuard(db)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM calendar_exceptions")
	db.Exec("DELETE FROM day_hours")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM clients")

	// ================== WEEKLY HOURS ==================
	log.Println("Creating weekly hours...")
	week := []domain.DayHours{
		{Weekday: 0, Open: false},
		{Weekday: 1, Open: true, StartTime: "09:00", EndTime: "18:00"},
		{Weekday: 2, Open: true, StartTime: "09:00", EndTime: "18:00"},
		{Weekday: 3, Open: true, StartTime: "09:00", EndTime: "18:00"},
		{Weekday: 4, Open: true, StartTime: "09:00", EndTime: "18:00"},
		{Weekday: 5, Open: true, StartTime: "09:00", EndTime: "18:00"},
		{Weekday: 6, Open: true, StartTime: "09:00", EndTime: "13:00"},
	}
	for i := range week {
		db.Create(&week[i])
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.ServiceDefinition{
		{ID: uuid.NewString(), Name: "Extensão Clássica", DurationMinutes: 120, Price: 160, Description: "Fio a fio, efeito natural"},
		{ID: uuid.NewString(), Name: "Volume Brasileiro", DurationMinutes: 150, Price: 190, Description: "Fios em Y, volume intermediário"},
		{ID: uuid.NewString(), Name: "Volume Russo", DurationMinutes: 180, Price: 220, Description: "Leques feitos à mão"},
		{ID: uuid.NewString(), Name: "Manutenção", DurationMinutes: 90, Price: 100, Description: "Reposição até 21 dias"},
		{ID: uuid.NewString(), Name: "Remoção", DurationMinutes: 30, Price: 50},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== CLIENTS ==================
	log.Println("Creating clients...")
	clients := []domain.Client{
		{ID: uuid.NewString(), Name: "Ana Souza", Phone: "(11) 98765-4321", EyeMapping: "Olho amendoado, curvatura D", Anamnesis: []byte(`{"contact_lenses":true,"sleep_side":"direito"}`)},
		{ID: uuid.NewString(), Name: "Beatriz Lima", Phone: "(11) 91234-5678", Anamnesis: []byte(`{"allergies":"esparadrapo"}`)},
		{ID: uuid.NewString(), Name: "Carla Mendes", Phone: "(21) 99876-1234"},
	}
	for i := range clients {
		db.Create(&clients[i])
	}

	// ================== APPOINTMENTS ==================
	log.Println("Creating appointments...")
	now := time.Now().In(cfg.Timezone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, cfg.Timezone)

	type seedAppt struct {
		client  int
		service int
		start   time.Time
		status  domain.AppointmentStatus
	}
	seeds := []seedAppt{
		{0, 0, today.Add(10 * time.Hour), domain.AppointmentConfirmed},
		{1, 3, today.Add(14 * time.Hour), domain.AppointmentPending},
		{2, 1, today.AddDate(0, 0, 1).Add(9 * time.Hour), domain.AppointmentPending},
		{1, 2, today.AddDate(0, 0, -7).Add(15 * time.Hour), domain.AppointmentNoShow},
	}
	for _, s := range seeds {
		svc := services[s.service]
		dur := time.Duration(svc.DurationMinutes) * time.Minute
		a := domain.Appointment{
			ID:          uuid.NewString(),
			ClientID:    clients[s.client].ID,
			ServiceID:   svc.ID,
			StartTime:   s.start,
			BufferedEnd: s.start.Add(dur + cfg.Buffer()),
			Status:      s.status,
		}
		db.Create(&a)
	}

	log.Println("Seed completed")
}

// ensureOverlapGuard installs the write-time double-booking guard on
// PostgreSQL: two non-cancelled appointments may never hold intersecting
// buffered ranges. SQLite deployments rely on the application-level check
// alone, which is safe for a single writer.
func ensureOverlapGuard(db *gorm.DB) {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		log.Println("btree_gist unavailable, skipping overlap guard:", err)
		return
	}
	stmt := `
ALTER TABLE appointments
ADD CONSTRAINT idx_no_double_booking
EXCLUDE USING gist (tstzrange(start_time, buffered_end) WITH &&)
WHERE (status NOT IN ('cancelled'))
`
	if err := db.Exec(stmt).Error; err != nil {
		// Already installed on a reseeded database.
		log.Println("overlap guard:", err)
	}
}
