package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NewsDraft     = "DRAFT"
	NewsPublished = "PUBLISHED"
	NewsArchived  = "ARCHIVED"
)

type News struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Slug          string         `gorm:"index;not null" json:"slug"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Excerpt       *string        `json:"excerpt"`
	FeaturedImage *string        `json:"featuredImage"`
	Category      *string        `json:"category"`
	Tags          datatypes.JSON `json:"tags"`
	Status        string         `gorm:"not null;default:DRAFT;index" json:"status"`
	PublishedAt   *time.Time     `json:"publishedAt"`
	AuthorID      string         `gorm:"not null;index" json:"authorId"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	// Relationships
	Author *User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"author,omitempty"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
