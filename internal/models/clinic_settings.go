package models

import "time"

// ClinicSettings is a singleton row. It is seeded on first migration and
// loaded once at startup; a missing or unparsable row aborts the process
// instead of being papered over per request.
type ClinicSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SlotDurationMin   int    `gorm:"default:15" json:"slot_duration_min"`
	BookingWindowDays int    `gorm:"default:7" json:"booking_window_days"`
	Timezone          string `gorm:"size:64;default:'Asia/Singapore'" json:"timezone"`

	MorningStart   string `gorm:"size:5;default:'09:00'" json:"morning_start"`
	MorningEnd     string `gorm:"size:5;default:'12:00'" json:"morning_end"`
	AfternoonStart string `gorm:"size:5;default:'14:00'" json:"afternoon_start"`
	AfternoonEnd   string `gorm:"size:5;default:'17:00'" json:"afternoon_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
