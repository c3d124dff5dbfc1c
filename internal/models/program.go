package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProgramUpcoming  = "UPCOMING"
	ProgramRunning   = "RUNNING"
	ProgramCompleted = "COMPLETED"
)

type Program struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Slug            string     `gorm:"index;not null" json:"slug"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	FeaturedImage   *string    `json:"featuredImage"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Location        *string    `json:"location"`
	MaxParticipants *int       `json:"maxParticipants"`
	Status          string     `gorm:"not null;default:UPCOMING;index" json:"status"`
	AuthorID        string     `gorm:"not null;index" json:"authorId"`
	CreatedAt       time.Time  `json:"createdAt"`

	// Relationships
	Author        *User          `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"author,omitempty"`
	Registrations []Registration `gorm:"foreignKey:ProgramID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"registrations"`
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
