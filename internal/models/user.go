package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleSuperAdmin = "SUPER_ADMIN"

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:SUPER_ADMIN" json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`

	// Relationships
	News     []News    `gorm:"foreignKey:AuthorID" json:"-"`
	Programs []Program `gorm:"foreignKey:AuthorID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
