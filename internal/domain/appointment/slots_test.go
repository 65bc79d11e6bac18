package appointment

import (
	"testing"
	"time"

	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

func clinicDay(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
}

func defaultSettings() *models.ClinicSettings {
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

func TestGenerateSlotsMorningWindow(t *testing.T) {
	day := clinicDay(t)

	slots := GenerateSlots(day, []Window{{Start: "09:00", End: "12:00"}}, 15*time.Minute)

	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}
	if got := slots[0].Format("15:04"); got != "09:00" {
		t.Errorf("first slot = %s, want 09:00", got)
	}
	if got := slots[len(slots)-1].Format("15:04"); got != "11:45" {
		t.Errorf("last slot = %s, want 11:45", got)
	}
}

func TestGenerateSlotsSpacingAndOrder(t *testing.T) {
	day := clinicDay(t)

	slots := GenerateSlots(day, DayWindows(defaultSettings()), 15*time.Minute)

	if len(slots) != 24 {
		t.Fatalf("expected 24 slots over both windows, got %d", len(slots))
	}

	seen := make(map[int64]struct{})
	for i, s := range slots {
		if _, dup := seen[s.Unix()]; dup {
			t.Fatalf("duplicate slot %s", s)
		}
		seen[s.Unix()] = struct{}{}

		if i == 0 {
			continue
		}
		gap := s.Sub(slots[i-1])
		// The jump across the lunch break is the only gap allowed to exceed
		// the slot duration.
		if gap < 15*time.Minute {
			t.Errorf("slots %d and %d only %v apart", i-1, i, gap)
		}
		if s.Before(slots[i-1]) {
			t.Errorf("slots out of order at %d", i)
		}
	}

	// Windows are honoured: nothing at or after each close.
	for _, s := range slots {
		hm := s.Format("15:04")
		if hm >= "12:00" && hm < "14:00" {
			t.Errorf("slot %s falls in the lunch gap", hm)
		}
		if hm >= "17:00" || hm < "09:00" {
			t.Errorf("slot %s outside working windows", hm)
		}
	}
}

func TestGenerateSlotsDurationLongerThanWindow(t *testing.T) {
	day := clinicDay(t)

	slots := GenerateSlots(day, []Window{{Start: "09:00", End: "09:30"}}, time.Hour)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestFilterOccupiedExactMatch(t *testing.T) {
	day := clinicDay(t)
	candidates := GenerateSlots(day, []Window{{Start: "09:00", End: "12:00"}}, 15*time.Minute)

	taken := []models.Appointment{
		{ScheduledStart: candidates[0].UTC(), Status: string(StatusBooked)},
	}

	free := FilterOccupied(candidates, taken)
	if len(free) != 11 {
		t.Fatalf("expected 11 free slots, got %d", len(free))
	}
	if free[0].Format("15:04") != "09:15" {
		t.Errorf("first free slot = %s, want 09:15", free[0].Format("15:04"))
	}
}

func TestFilterOccupiedIgnoresTerminalStatuses(t *testing.T) {
	day := clinicDay(t)
	candidates := GenerateSlots(day, []Window{{Start: "09:00", End: "12:00"}}, 15*time.Minute)

	taken := []models.Appointment{
		{ScheduledStart: candidates[0].UTC(), Status: string(StatusCompleted)},
		{ScheduledStart: candidates[1].UTC(), Status: string(StatusNoShow)},
	}

	free := FilterOccupied(candidates, taken)
	if len(free) != len(candidates) {
		t.Fatalf("terminal appointments must not occupy slots: %d free of %d", len(free), len(candidates))
	}
}

func TestFilterOccupiedOffGridDoesNotSnap(t *testing.T) {
	day := clinicDay(t)
	candidates := GenerateSlots(day, []Window{{Start: "09:00", End: "12:00"}}, 15*time.Minute)

	// 09:07 is between slots; exact-instant matching leaves the grid alone.
	offGrid := candidates[0].Add(7 * time.Minute)
	taken := []models.Appointment{
		{ScheduledStart: offGrid.UTC(), Status: string(StatusBooked)},
	}

	free := FilterOccupied(candidates, taken)
	if len(free) != len(candidates) {
		t.Fatalf("off-grid appointment must not consume a slot: %d free of %d", len(free), len(candidates))
	}
}
