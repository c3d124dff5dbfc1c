package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DonationPending  = "PENDING"
	DonationVerified = "VERIFIED"
	DonationRejected = "REJECTED"
)

type Donation struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	DonorID       string     `gorm:"not null;index" json:"donorId"`
	Amount        float64    `gorm:"not null" json:"amount"`
	PaymentMethod string     `gorm:"not null" json:"paymentMethod"`
	Status        string     `gorm:"not null;default:PENDING" json:"status"`
	Notes         *string    `json:"notes"`
	DonatedAt     time.Time  `gorm:"not null;index" json:"donatedAt"`
	VerifiedAt    *time.Time `json:"verifiedAt"`

	// Relationships
	Donor *Donor `gorm:"foreignKey:DonorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"donor,omitempty"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
