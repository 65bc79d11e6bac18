package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
	"github.com/nordeim/Polaris-Family-Clinic/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	settings *models.ClinicSettings
	loc      *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	settings *models.ClinicSettings,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		settings: settings,
		loc:      timezone.Location(settings.Timezone),
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uuid.UUID,
	dateStr string,
) ([]domain.Slot, error) {

	day, err := time.ParseInLocation("2006-01-02", dateStr, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// Outside [today, today+window] there is nothing to offer.
	now := time.Now().In(uc.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	lastDay := today.AddDate(0, 0, uc.settings.BookingWindowDays)

	if day.Before(today) || day.After(lastDay) {
		return []domain.Slot{}, nil
	}

	slotDuration := time.Duration(uc.settings.SlotDurationMin) * time.Minute
	candidates := domain.GenerateSlots(day, domain.DayWindows(uc.settings), slotDuration)

	taken, err := uc.repo.ListActiveAppointmentsForDay(
		ctx,
		doctorID,
		day,
		day.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	free := domain.FilterOccupied(candidates, taken)

	slots := make([]domain.Slot, 0, len(free))
	for _, t := range free {
		slots = append(slots, domain.Slot{
			ISO:   t.UTC().Format(time.RFC3339),
			Label: t.Format("15:04"),
		})
	}

	return slots, nil
}
