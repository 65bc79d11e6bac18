package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

func testSettings() *models.ClinicSettings {
	return &models.ClinicSettings{
		SlotDurationMin:   15,
		BookingWindowDays: 7,
		Timezone:          "Asia/Singapore",
		MorningStart:      "09:00",
		MorningEnd:        "12:00",
		AfternoonStart:    "14:00",
		AfternoonEnd:      "17:00",
	}
}

// tomorrow is always inside the booking window, so availability tests stay
// deterministic regardless of when they run.
func tomorrowIn(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
}

func TestGetAvailabilityFullDay(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(true)

	uc := NewGetAvailability(repo, testSettings())
	date := tomorrowIn(repo.loc).Format("2006-01-02")

	slots, err := uc.Execute(context.Background(), doctor.ID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 24 {
		t.Fatalf("expected 24 slots (12 morning + 12 afternoon), got %d", len(slots))
	}
	if slots[0].Label != "09:00" {
		t.Errorf("first label = %s, want 09:00", slots[0].Label)
	}
	if slots[len(slots)-1].Label != "16:45" {
		t.Errorf("last label = %s, want 16:45", slots[len(slots)-1].Label)
	}

	for i, s := range slots {
		instant, err := time.Parse(time.RFC3339, s.ISO)
		if err != nil {
			t.Fatalf("slot %d ISO %q not RFC3339: %v", i, s.ISO, err)
		}
		if i > 0 {
			prev, _ := time.Parse(time.RFC3339, slots[i-1].ISO)
			if !instant.After(prev) {
				t.Errorf("slots not strictly ascending at %d", i)
			}
		}
	}
}

func TestGetAvailabilityExcludesBookedSlot(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(true)
	uc := NewGetAvailability(repo, testSettings())

	day := tomorrowIn(repo.loc)
	nineAM := day.Add(9 * time.Hour)
	repo.appointments[newID(t)] = &models.Appointment{
		DoctorID:       doctor.ID,
		ScheduledStart: nineAM.UTC(),
		Status:         string(domain.StatusBooked),
	}

	slots, err := uc.Execute(context.Background(), doctor.ID, day.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 23 {
		t.Fatalf("expected 23 slots after booking 09:00, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Label == "09:00" {
			t.Fatal("09:00 should have been excluded")
		}
	}
}

func TestGetAvailabilityOutsideBookingWindow(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(true)
	uc := NewGetAvailability(repo, testSettings())

	past := tomorrowIn(repo.loc).AddDate(0, 0, -3)
	beyond := tomorrowIn(repo.loc).AddDate(0, 0, 14)

	for _, day := range []time.Time{past, beyond} {
		slots, err := uc.Execute(context.Background(), doctor.ID, day.Format("2006-01-02"))
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", day, err)
		}
		if len(slots) != 0 {
			t.Errorf("expected no slots for %s, got %d", day.Format("2006-01-02"), len(slots))
		}
	}
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(true)
	uc := NewGetAvailability(repo, testSettings())

	_, err := uc.Execute(context.Background(), doctor.ID, "next tuesday")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestGetAvailabilityStoreFailurePropagates(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(true)
	repo.failListDay = true
	uc := NewGetAvailability(repo, testSettings())

	_, err := uc.Execute(context.Background(), doctor.ID, tomorrowIn(repo.loc).Format("2006-01-02"))
	if err == nil {
		t.Fatal("expected store failure to propagate")
	}
}
