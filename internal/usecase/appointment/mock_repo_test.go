package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
	"github.com/nordeim/Polaris-Family-Clinic/internal/timezone"
)

// -- Mock Repository --

type mockRepo struct {
	doctors      map[uuid.UUID]*models.Doctor
	profiles     map[uuid.UUID]*models.PatientProfile // keyed by user id
	appointments map[uuid.UUID]*models.Appointment

	loc *time.Location

	failListDay bool
	failArrive  bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		doctors:      make(map[uuid.UUID]*models.Doctor),
		profiles:     make(map[uuid.UUID]*models.PatientProfile),
		appointments: make(map[uuid.UUID]*models.Appointment),
		loc:          timezone.Location("Asia/Singapore"),
	}
}

func (m *mockRepo) addDoctor(active bool) *models.Doctor {
	d := &models.Doctor{ID: uuid.New(), Name: "Dr Tan", Active: active}
	m.doctors[d.ID] = d
	return d
}

func (m *mockRepo) addProfile(userID uuid.UUID) *models.PatientProfile {
	p := &models.PatientProfile{ID: uuid.New(), UserID: userID, FullName: "Alex Lim"}
	m.profiles[userID] = p
	return p
}

func (m *mockRepo) GetDoctor(_ context.Context, id uuid.UUID) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return d, nil
}

func (m *mockRepo) GetProfileByUser(_ context.Context, userID uuid.UUID) (*models.PatientProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	for _, other := range m.appointments {
		if other.DoctorID == ap.DoctorID &&
			other.ScheduledStart.Equal(ap.ScheduledStart) &&
			domain.Status(other.Status).Active() {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = time.Now()
	m.appointments[ap.ID] = ap
	return nil
}

func (m *mockRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := m.appointments[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	cp := *ap
	return &cp, nil
}

func (m *mockRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment, status domain.Status) error {
	stored, ok := m.appointments[ap.ID]
	if !ok {
		return fmt.Errorf("not found")
	}
	stored.Status = string(status)
	ap.Status = string(status)
	return nil
}

func (m *mockRepo) MarkArrived(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	if m.failArrive {
		return nil, fmt.Errorf("store unavailable")
	}

	ap, ok := m.appointments[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}

	if ap.Status == string(domain.StatusArrived) && ap.QueueNumber != "" {
		cp := *ap
		return &cp, nil
	}

	local := ap.ScheduledStart.In(m.loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, m.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	var issued []string
	for _, other := range m.appointments {
		if other.DoctorID == ap.DoctorID &&
			!other.ScheduledStart.Before(dayStart) &&
			other.ScheduledStart.Before(dayEnd) &&
			other.QueueNumber != "" {
			issued = append(issued, other.QueueNumber)
		}
	}

	now := time.Now().In(m.loc)
	ap.Status = string(domain.StatusArrived)
	ap.QueueNumber = domain.NextQueueNumber(issued)
	ap.ArrivedAt = &now

	cp := *ap
	return &cp, nil
}

func (m *mockRepo) ListActiveAppointmentsForDay(
	_ context.Context,
	doctorID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	if m.failListDay {
		return nil, fmt.Errorf("store unavailable")
	}

	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.DoctorID == doctorID &&
			domain.Status(ap.Status).Active() &&
			!ap.ScheduledStart.Before(start) &&
			ap.ScheduledStart.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAppointmentsForPatient(
	_ context.Context,
	patientID uuid.UUID,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.PatientID == patientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAppointmentsBetween(
	_ context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if !ap.ScheduledStart.Before(start) && ap.ScheduledStart.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*mockRepo)(nil)
