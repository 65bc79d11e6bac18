package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

type Repository interface {
	// -------- Doctor --------
	GetDoctor(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Doctor, error)

	// -------- Patient --------
	GetProfileByUser(
		ctx context.Context,
		userID uuid.UUID,
	) (*models.PatientProfile, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment inserts inside a transaction that first verifies no
	// active appointment holds the same (doctor, scheduled_start). Loss of
	// the race surfaces as the slot_taken business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (queue / state change) --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		status Status,
	) error

	// MarkArrived sets status=arrived and assigns the next queue number for
	// the doctor's day in one serialized read-modify-write. Idempotent for an
	// appointment that already arrived with a number.
	MarkArrived(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// -------- Listings --------
	ListActiveAppointmentsForDay(
		ctx context.Context,
		doctorID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPatient(
		ctx context.Context,
		patientID uuid.UUID,
	) ([]models.Appointment, error)

	ListAppointmentsBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
