package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donor struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	Donations []Donation `gorm:"foreignKey:DonorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"donations"`
}

func (d *Donor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
