package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lashstudio/internal/database"
	"lashstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// migrateTestDB applies the same migration set cmd/seed runs, so these tests
// catch any drift between the migrated table names and the ones the
// repositories read.
func migrateTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Client{},
		&domain.ServiceDefinition{},
		&domain.Appointment{},
		&domain.DayHours{},
		&domain.CalendarException{},
	); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}

func TestMigratedTablesServeRepositories(t *testing.T) {
	db := migrateTestDB(t)
	ctx := context.Background()

	services := NewServiceRepository(db)
	clients := NewClientRepository(db)
	appts := NewAppointmentRepository(db)

	svc := &domain.ServiceDefinition{
		ID:              "svc-1",
		Name:            "Volume Russo",
		DurationMinutes: 60,
		Price:           200,
	}
	if err := services.Create(ctx, svc); err != nil {
		t.Fatalf("service create failed: %v", err)
	}

	listed, err := services.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, listed, 1)

	got, err := services.GetByID(ctx, "svc-1")
	assert.NoError(t, err)
	assert.Equal(t, 60, got.DurationMinutes)

	cli := &domain.Client{ID: "cli-1", Name: "Ana Souza", Phone: "(11) 98765-4321"}
	if err := clients.Create(ctx, cli); err != nil {
		t.Fatalf("client create failed: %v", err)
	}

	start := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	a := &domain.Appointment{
		ID:          "appt-1",
		ClientID:    "cli-1",
		ServiceID:   "svc-1",
		StartTime:   start,
		BufferedEnd: start.Add(75 * time.Minute),
		Status:      domain.AppointmentConfirmed,
	}
	if err := appts.Create(ctx, a); err != nil {
		t.Fatalf("appointment create failed: %v", err)
	}

	// The range query joins clients and services by name; it only works when
	// the migrated tables carry the names the raw SQL expects.
	rows, err := appts.ListRange(ctx, start.Add(-time.Hour), start.Add(time.Hour))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Ana Souza", rows[0].ClientName)
	assert.Equal(t, "Volume Russo", rows[0].ServiceName)
	assert.Equal(t, 60, rows[0].ServiceMinutes)
	assert.Equal(t, 200.0, rows[0].ServicePrice)
}
