package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/dto"
)

type ListForPatient struct {
	repo domain.Repository
}

func NewListForPatient(repo domain.Repository) *ListForPatient {
	return &ListForPatient{repo: repo}
}

func (uc *ListForPatient) Execute(
	ctx context.Context,
	userID uuid.UUID,
) ([]dto.PatientAppointmentDTO, error) {

	// No profile yet simply means no appointments.
	profile, err := uc.repo.GetProfileByUser(ctx, userID)
	if err != nil {
		return []dto.PatientAppointmentDTO{}, nil
	}

	appointments, err := uc.repo.ListAppointmentsForPatient(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PatientAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.PatientAppointmentDTO{
			ID:             ap.ID,
			ScheduledStart: ap.ScheduledStart,
			Status:         ap.Status,
			QueueNumber:    ap.QueueNumber,
			DoctorName:     ap.Doctor.Name,
			Reason:         ap.Reason,
		})
	}

	return out, nil
}
