package appointment

import (
	"time"

	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

// Slot is one bookable start time: the UTC instant the API books against,
// plus a clinic-local label for display.
type Slot struct {
	ISO   string `json:"iso"`
	Label string `json:"label"`
}

// Window is a clinic-local working window, bounds as HH:MM strings.
type Window struct {
	Start string
	End   string
}

func DayWindows(s *models.ClinicSettings) []Window {
	return []Window{
		{Start: s.MorningStart, End: s.MorningEnd},
		{Start: s.AfternoonStart, End: s.AfternoonEnd},
	}
}

// GenerateSlots builds the candidate grid for one clinic-local day: from each
// window's open time, step by slotDuration while the slot still fits before
// the window's close. day must be midnight in the clinic location.
func GenerateSlots(day time.Time, windows []Window, slotDuration time.Duration) []time.Time {
	loc := day.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	var out []time.Time
	for _, w := range windows {
		start := parseHM(w.Start)
		end := parseHM(w.End)

		for cur := start; !cur.Add(slotDuration).After(end); cur = cur.Add(slotDuration) {
			out = append(out, cur)
		}
	}

	return out
}

// FilterOccupied drops candidates whose exact UTC instant matches an active
// appointment's scheduled_start. Exact-instant matching is deliberate: an
// off-grid row (data entered outside this API) does not silently consume a
// neighbouring slot.
func FilterOccupied(candidates []time.Time, taken []models.Appointment) []time.Time {
	occupied := make(map[int64]struct{}, len(taken))
	for _, ap := range taken {
		if Status(ap.Status).Active() {
			occupied[ap.ScheduledStart.Unix()] = struct{}{}
		}
	}

	out := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := occupied[c.Unix()]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}
