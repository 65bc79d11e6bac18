package dto

import (
	"time"

	"github.com/google/uuid"
)

// PatientAppointmentDTO is what a patient sees of their own visit.
type PatientAppointmentDTO struct {
	ID             uuid.UUID `json:"id"`
	ScheduledStart time.Time `json:"scheduled_start"`
	Status         string    `json:"status"`
	QueueNumber    string    `json:"queue_number,omitempty"`
	DoctorName     string    `json:"doctor_name"`
	Reason         string    `json:"reason,omitempty"`
}

// RosterEntryDTO is one line of the staff day roster.
type RosterEntryDTO struct {
	ID              uuid.UUID `json:"id"`
	ScheduledStart  time.Time `json:"scheduled_start"`
	Status          string    `json:"status"`
	QueueNumber     string    `json:"queue_number,omitempty"`
	PatientFullName string    `json:"patient_full_name"`
	DoctorName      string    `json:"doctor_name"`
}
