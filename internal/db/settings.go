package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

// LoadClinicSettings fetches and validates the singleton settings row. It is
// called once at startup; callers treat any error as fatal so a
// misconfigured clinic never serves requests with silent defaults.
func LoadClinicSettings(gdb *gorm.DB) (*models.ClinicSettings, error) {
	var s models.ClinicSettings
	if err := gdb.First(&s).Error; err != nil {
		return nil, fmt.Errorf("clinic settings not available: %w", err)
	}

	if s.SlotDurationMin <= 0 {
		return nil, fmt.Errorf("clinic settings: slot_duration_min must be positive, got %d", s.SlotDurationMin)
	}
	if s.BookingWindowDays < 0 {
		return nil, fmt.Errorf("clinic settings: booking_window_days must not be negative, got %d", s.BookingWindowDays)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return nil, fmt.Errorf("clinic settings: invalid timezone %q: %w", s.Timezone, err)
	}
	for _, hm := range []string{s.MorningStart, s.MorningEnd, s.AfternoonStart, s.AfternoonEnd} {
		if _, err := time.Parse("15:04", hm); err != nil {
			return nil, fmt.Errorf("clinic settings: invalid window bound %q: %w", hm, err)
		}
	}

	return &s, nil
}
