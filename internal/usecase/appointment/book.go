package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nordeim/Polaris-Family-Clinic/internal/audit"
	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	UserID         uuid.UUID
	DoctorID       uuid.UUID
	ScheduledStart time.Time
	Reason         string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	profile, err := uc.repo.GetProfileByUser(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("profile_not_found")
	}

	doctor, err := uc.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}
	if !doctor.Active {
		return nil, httperr.ErrBusiness("doctor_inactive")
	}

	ap := &models.Appointment{
		PatientID:      profile.ID,
		DoctorID:       doctor.ID,
		ScheduledStart: in.ScheduledStart.UTC(),
		Status:         string(domain.InitialStatus()),
		Reason:         in.Reason,
	}

	// The repository rejects with slot_taken when the (doctor, instant)
	// pair is already held by an active appointment.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
