package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lashstudio/internal/config"
	"lashstudio/internal/database"
	"lashstudio/internal/domain"
	"lashstudio/internal/repository"

	"github.com/stretchr/testify/assert"
)

func setupCatalogService(t *testing.T) (*Service, *repository.AppointmentRepository, *repository.ClientRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Client{},
		&domain.ServiceDefinition{},
		&domain.Appointment{},
	); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	serviceRepo := repository.NewServiceRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	clientRepo := repository.NewClientRepository(db)
	cfg := &config.Config{
		Timezone:               time.UTC,
		BufferMinutes:          15,
		FallbackServiceMinutes: 60,
	}
	return NewService(serviceRepo, appointmentRepo, cfg), appointmentRepo, clientRepo
}

func TestUpdateDurationResyncsBufferedEnds(t *testing.T) {
	svc, appts, clients := setupCatalogService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, UpsertServiceRequest{Name: "Volume Russo", DurationMinutes: 60, Price: 200})
	if err != nil {
		t.Fatalf("service create failed: %v", err)
	}
	if err := clients.Create(ctx, &domain.Client{ID: "cli-1", Name: "Ana Souza"}); err != nil {
		t.Fatalf("client create failed: %v", err)
	}

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	booked := &domain.Appointment{
		ID:          "appt-1",
		ClientID:    "cli-1",
		ServiceID:   created.ID,
		StartTime:   start,
		BufferedEnd: start.Add(75 * time.Minute), // 60m + 15m buffer
		Status:      domain.AppointmentConfirmed,
	}
	if err := appts.Create(ctx, booked); err != nil {
		t.Fatalf("appointment create failed: %v", err)
	}
	cancelled := &domain.Appointment{
		ID:          "appt-2",
		ClientID:    "cli-1",
		ServiceID:   created.ID,
		StartTime:   start.Add(3 * time.Hour),
		BufferedEnd: start.Add(3*time.Hour + 75*time.Minute),
		Status:      domain.AppointmentCancelled,
	}
	if err := appts.Create(ctx, cancelled); err != nil {
		t.Fatalf("appointment create failed: %v", err)
	}

	_, err = svc.Update(ctx, created.ID, UpsertServiceRequest{Name: "Volume Russo", DurationMinutes: 90, Price: 200})
	assert.NoError(t, err)

	// Non-cancelled appointment now carries the span of the new duration.
	got, err := appts.GetByID(ctx, "appt-1")
	assert.NoError(t, err)
	assert.Equal(t, start.Add(105*time.Minute), got.BufferedEnd)

	// Cancelled rows are outside the overlap guard and stay untouched.
	gone, err := appts.GetByID(ctx, "appt-2")
	assert.NoError(t, err)
	assert.Equal(t, start.Add(3*time.Hour+75*time.Minute), gone.BufferedEnd)
}

func TestUpdateWithoutDurationChangeLeavesSpans(t *testing.T) {
	svc, appts, clients := setupCatalogService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, UpsertServiceRequest{Name: "Manutenção", DurationMinutes: 90, Price: 100})
	if err != nil {
		t.Fatalf("service create failed: %v", err)
	}
	if err := clients.Create(ctx, &domain.Client{ID: "cli-1", Name: "Beatriz Lima"}); err != nil {
		t.Fatalf("client create failed: %v", err)
	}

	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	booked := &domain.Appointment{
		ID:          "appt-1",
		ClientID:    "cli-1",
		ServiceID:   created.ID,
		StartTime:   start,
		BufferedEnd: start.Add(105 * time.Minute),
		Status:      domain.AppointmentPending,
	}
	if err := appts.Create(ctx, booked); err != nil {
		t.Fatalf("appointment create failed: %v", err)
	}

	// Price-only edit: no resync needed.
	_, err = svc.Update(ctx, created.ID, UpsertServiceRequest{Name: "Manutenção", DurationMinutes: 90, Price: 120})
	assert.NoError(t, err)

	got, err := appts.GetByID(ctx, "appt-1")
	assert.NoError(t, err)
	assert.Equal(t, start.Add(105*time.Minute), got.BufferedEnd)
}
