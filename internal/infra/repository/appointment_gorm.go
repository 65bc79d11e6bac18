package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

const pgUniqueViolation = "23505"

type AppointmentGormRepository struct {
	db *gorm.DB

	// Clinic location; queue numbers are scoped to clinic-local days.
	loc *time.Location
}

func NewAppointmentGormRepository(db *gorm.DB, loc *time.Location) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, loc: loc}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctor(
	ctx context.Context,
	id uuid.UUID,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfileByUser(
	ctx context.Context,
	userID uuid.UUID,
) (*models.PatientProfile, error) {

	var profile models.PatientProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND scheduled_start = ? AND status IN ?",
				ap.DoctorID,
				ap.ScheduledStart,
				activeStatuses(),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	// The partial unique index catches the race the pre-check cannot: map
	// its violation to the same business conflict.
	if isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func activeStatuses() []string {
	return []string{
		string(domain.StatusBooked),
		string(domain.StatusArrived),
		string(domain.StatusInConsultation),
	}
}

// --------------------------------------------------
// Appointment (queue / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	status domain.Status,
) error {
	ap.Status = string(status)
	return r.db.WithContext(ctx).Save(ap).Error
}

// MarkArrived assigns the queue number under a per-doctor serialization
// point: the doctor row is locked FOR UPDATE for the duration of the
// scan-and-assign, so two concurrent arrivals for the same doctor cannot
// both read the same max suffix.
func (r *AppointmentGormRepository) MarkArrived(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var result models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ap models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, "id = ?", id).Error; err != nil {
			return err
		}

		// Re-arrival with a number is a no-op returning the existing one.
		if ap.Status == string(domain.StatusArrived) && ap.QueueNumber != "" {
			result = ap
			return nil
		}

		var doc models.Doctor
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&doc, "id = ?", ap.DoctorID).Error; err != nil {
			return err
		}

		dayStart, dayEnd := r.dayBounds(ap.ScheduledStart)

		var issued []string
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"doctor_id = ? AND scheduled_start >= ? AND scheduled_start < ? AND queue_number <> ''",
				ap.DoctorID, dayStart, dayEnd,
			).
			Pluck("queue_number", &issued).Error; err != nil {
			return err
		}

		now := time.Now().In(r.loc)
		ap.Status = string(domain.StatusArrived)
		ap.QueueNumber = domain.NextQueueNumber(issued)
		ap.ArrivedAt = &now

		if err := tx.Save(&ap).Error; err != nil {
			return err
		}

		result = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *AppointmentGormRepository) dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(r.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.loc)
	return start, start.Add(24 * time.Hour)
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	doctorID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("scheduled_start", "status").
		Where(
			"doctor_id = ? AND status IN ? AND scheduled_start >= ? AND scheduled_start < ?",
			doctorID, activeStatuses(), start, end,
		).
		Order("scheduled_start ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	patientID uuid.UUID,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("scheduled_start ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("scheduled_start >= ? AND scheduled_start < ?", start, end).
		Order("scheduled_start ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
