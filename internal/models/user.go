package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleOwner = "OWNER"
	RoleAdmin = "ADMIN"
)

const (
	StatusActive              = "ACTIVE"
	StatusPendingVerification = "PENDING_VERIFICATION"
	StatusBanned              = "BANNED"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	AvatarURL    *string `gorm:"size:255" json:"avatarUrl"`

	Role   string `gorm:"size:20;default:'USER'" json:"role"`
	Status string `gorm:"size:30;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
