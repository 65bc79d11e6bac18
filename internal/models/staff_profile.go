package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffProfile is the staff directory: its presence (with an accepted role)
// is what makes an authenticated user a member of staff.
type StaffProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	// One of: staff, doctor, admin.
	Role string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *StaffProfile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
