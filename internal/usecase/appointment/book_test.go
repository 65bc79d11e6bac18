package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nordeim/Polaris-Family-Clinic/internal/audit"
	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
)

func newID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func TestBookSuccess(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(true)
	userID := newID(t)
	profile := repo.addProfile(userID)

	uc := NewBook(repo, audit.Nop())

	start := tomorrowIn(repo.loc).Add(9 * time.Hour)
	ap, err := uc.Execute(context.Background(), BookInput{
		UserID:         userID,
		DoctorID:       doctor.ID,
		ScheduledStart: start,
		Reason:         "persistent cough",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(domain.StatusBooked) {
		t.Errorf("status = %s, want booked", ap.Status)
	}
	if ap.PatientID != profile.ID {
		t.Errorf("appointment bound to wrong patient")
	}
	if !ap.ScheduledStart.Equal(start.UTC()) {
		t.Errorf("scheduled_start = %v, want %v (UTC)", ap.ScheduledStart, start.UTC())
	}
	if ap.QueueNumber != "" {
		t.Errorf("queue number must not be assigned at booking time")
	}
}

func TestBookSameSlotTwiceConflicts(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(true)

	userA := newID(t)
	userB := newID(t)
	repo.addProfile(userA)
	repo.addProfile(userB)

	uc := NewBook(repo, audit.Nop())
	start := tomorrowIn(repo.loc).Add(9 * time.Hour)

	if _, err := uc.Execute(context.Background(), BookInput{
		UserID: userA, DoctorID: doctor.ID, ScheduledStart: start,
	}); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}

	_, err := uc.Execute(context.Background(), BookInput{
		UserID: userB, DoctorID: doctor.ID, ScheduledStart: start,
	})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("second booking should conflict, got %v", err)
	}
}

func TestBookWithoutProfile(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(true)

	uc := NewBook(repo, audit.Nop())

	_, err := uc.Execute(context.Background(), BookInput{
		UserID:         newID(t),
		DoctorID:       doctor.ID,
		ScheduledStart: tomorrowIn(repo.loc).Add(9 * time.Hour),
	})
	if !httperr.IsBusiness(err, "profile_not_found") {
		t.Fatalf("expected profile_not_found, got %v", err)
	}
}

func TestBookInactiveDoctor(t *testing.T) {
	repo := newMockRepo()
	doctor := repo.addDoctor(false)
	userID := newID(t)
	repo.addProfile(userID)

	uc := NewBook(repo, audit.Nop())

	_, err := uc.Execute(context.Background(), BookInput{
		UserID:         userID,
		DoctorID:       doctor.ID,
		ScheduledStart: tomorrowIn(repo.loc).Add(9 * time.Hour),
	})
	if !httperr.IsBusiness(err, "doctor_inactive") {
		t.Fatalf("expected doctor_inactive, got %v", err)
	}
}

func TestBookUnknownDoctor(t *testing.T) {
	repo := newMockRepo()
	userID := newID(t)
	repo.addProfile(userID)

	uc := NewBook(repo, audit.Nop())

	_, err := uc.Execute(context.Background(), BookInput{
		UserID:         userID,
		DoctorID:       newID(t),
		ScheduledStart: tomorrowIn(repo.loc).Add(9 * time.Hour),
	})
	if !httperr.IsBusiness(err, "doctor_not_found") {
		t.Fatalf("expected doctor_not_found, got %v", err)
	}
}
