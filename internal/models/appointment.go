package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PatientID uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	Patient   PatientProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Doctor   Doctor    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Stored in UTC; clinic-local interpretation happens at the edges.
	ScheduledStart time.Time `gorm:"not null;index" json:"scheduled_start"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	// Assigned once, on the first transition into "arrived".
	QueueNumber string `gorm:"size:10" json:"queue_number,omitempty"`

	Reason    string     `gorm:"size:500" json:"reason,omitempty"`
	ArrivedAt *time.Time `json:"arrived_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
