package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nordeim/Polaris-Family-Clinic/internal/config"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.PatientProfile{},
		&models.StaffProfile{},
		&models.ClinicSettings{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Active appointments are unique per (doctor, instant). The partial
	// index backstops the pre-insert check: two requests racing past the
	// check cannot both land.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_doctor_slot
        ON appointments (doctor_id, scheduled_start)
        WHERE status IN ('booked', 'arrived', 'in_consultation')
    `)

	// Seed the singleton settings row on first boot only; operators tune it
	// afterwards. Startup fails later if it is missing or invalid.
	db.Exec(`
        INSERT INTO clinic_settings (slot_duration_min, booking_window_days, timezone,
            morning_start, morning_end, afternoon_start, afternoon_end, created_at, updated_at)
        SELECT 15, 7, 'Asia/Singapore', '09:00', '12:00', '14:00', '17:00', NOW(), NOW()
        WHERE NOT EXISTS (SELECT 1 FROM clinic_settings)
    `)

	return db
}
