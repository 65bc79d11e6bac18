package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientProfile never carries the raw NRIC. Only the keyed hash (for
// deduplication) and the masked display form are persisted.
type PatientProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FullName   string `gorm:"size:200;not null" json:"full_name"`
	NRICHash   string `gorm:"size:64;not null" json:"-"`
	NRICMasked string `gorm:"size:32;not null" json:"nric_masked"`

	DOB      string `gorm:"size:10" json:"dob"`
	Language string `gorm:"size:16;default:'en'" json:"language"`
	CHASTier string `gorm:"size:10;default:'unknown'" json:"chas_tier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PatientProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
