package appointment

import (
	"context"
	"time"

	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/dto"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
	"github.com/nordeim/Polaris-Family-Clinic/internal/timezone"
)

type ListDayRoster struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListDayRoster(
	repo domain.Repository,
	settings *models.ClinicSettings,
) *ListDayRoster {
	return &ListDayRoster{
		repo: repo,
		loc:  timezone.Location(settings.Timezone),
	}
}

// Execute returns today's appointments across all doctors, in arrival order,
// with display names resolved for the front desk.
func (uc *ListDayRoster) Execute(ctx context.Context) ([]dto.RosterEntryDTO, error) {

	now := time.Now().In(uc.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RosterEntryDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.RosterEntryDTO{
			ID:              ap.ID,
			ScheduledStart:  ap.ScheduledStart,
			Status:          ap.Status,
			QueueNumber:     ap.QueueNumber,
			PatientFullName: ap.Patient.FullName,
			DoctorName:      ap.Doctor.Name,
		})
	}

	return out, nil
}
