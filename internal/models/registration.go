package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration rows are written by the public site; the admin backend
// only lists and counts them under their program.
type Registration struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProgramID string    `gorm:"not null;index" json:"programId"`
	Name      string    `gorm:"not null" json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	Program Program `gorm:"foreignKey:ProgramID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
