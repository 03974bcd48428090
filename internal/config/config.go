package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr               = ":8080"
	defaultTimezone               = "America/Sao_Paulo"
	defaultBufferMinutes          = "15"
	defaultSlotStepMinutes        = "15"
	defaultDepositFraction        = "0.5"
	defaultFallbackServiceMinutes = "60"
	defaultEnforceExceptions      = "false"
)

// Config carries the scheduling knobs that must be adjustable without code
// changes: the inter-appointment buffer, the slot suggestion granularity and
// the default deposit fraction for flagged clients.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	Timezone    *time.Location

	BufferMinutes          int
	SlotStepMinutes        int
	FallbackServiceMinutes int
	DepositFraction        float64

	// Whether holiday closures block the intraday timeline. The historical
	// behavior is false: exceptions are stored and shown but only the weekly
	// open flag gates availability.
	EnforceCalendarExceptions bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "studio.db"
	}

	tzName := getEnv("STUDIO_TIMEZONE", defaultTimezone)
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("STUDIO_TIMEZONE: %w", err)
	}
	cfg.Timezone = tz

	if cfg.BufferMinutes, err = parseIntEnv("BUFFER_MINUTES", defaultBufferMinutes); err != nil {
		return nil, err
	}
	if cfg.SlotStepMinutes, err = parseIntEnv("SLOT_STEP_MINUTES", defaultSlotStepMinutes); err != nil {
		return nil, err
	}
	if cfg.FallbackServiceMinutes, err = parseIntEnv("FALLBACK_SERVICE_MINUTES", defaultFallbackServiceMinutes); err != nil {
		return nil, err
	}
	if cfg.SlotStepMinutes <= 0 {
		return nil, fmt.Errorf("SLOT_STEP_MINUTES must be positive")
	}
	if cfg.BufferMinutes < 0 || cfg.FallbackServiceMinutes <= 0 {
		return nil, fmt.Errorf("invalid scheduling minutes configuration")
	}

	fraction := getEnv("DEPOSIT_FRACTION", defaultDepositFraction)
	cfg.DepositFraction, err = strconv.ParseFloat(fraction, 64)
	if err != nil || cfg.DepositFraction < 0 || cfg.DepositFraction > 1 {
		return nil, fmt.Errorf("DEPOSIT_FRACTION must be a number in [0,1]: %q", fraction)
	}

	enforce := getEnv("ENFORCE_CALENDAR_EXCEPTIONS", defaultEnforceExceptions)
	cfg.EnforceCalendarExceptions, err = strconv.ParseBool(enforce)
	if err != nil {
		return nil, fmt.Errorf("ENFORCE_CALENDAR_EXCEPTIONS: %w", err)
	}

	return cfg, nil
}

func (c *Config) Buffer() time.Duration {
	return time.Duration(c.BufferMinutes) * time.Minute
}

func (c *Config) SlotStep() time.Duration {
	return time.Duration(c.SlotStepMinutes) * time.Minute
}

func (c *Config) FallbackServiceDuration() time.Duration {
	return time.Duration(c.FallbackServiceMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", key, raw)
	}
	return v, nil
}
