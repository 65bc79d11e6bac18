package appointment

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nordeim/Polaris-Family-Clinic/internal/audit"
	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute advances one appointment through the lifecycle. The first
// transition into "arrived" also assigns the queue number; repeating it is a
// no-op that returns the stored number.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	staffUserID uuid.UUID,
	appointmentID uuid.UUID,
	target domain.Status,
) (*models.Appointment, error) {

	if !target.Valid() || target == domain.StatusBooked {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	current := domain.Status(ap.Status)

	if target == domain.StatusArrived {
		if current == domain.StatusArrived && ap.QueueNumber != "" {
			return ap, nil
		}
		if !domain.CanTransition(current, target) {
			return nil, httperr.ErrBusiness("invalid_transition")
		}

		updated, err := uc.repo.MarkArrived(ctx, ap.ID)
		if err != nil {
			log.Error().Err(err).Str("appointment_id", ap.ID.String()).
				Msg("queue number assignment failed")
			return nil, httperr.ErrBusiness("queue_assignment_failed")
		}
		ap = updated
	} else {
		if !domain.CanTransition(current, target) {
			return nil, httperr.ErrBusiness("invalid_transition")
		}
		if err := uc.repo.UpdateAppointmentStatus(ctx, ap, target); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffUserID,
		Action:   "appointment_status_" + string(target),
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": string(current),
			"to":   string(target),
		},
	})

	return ap, nil
}
