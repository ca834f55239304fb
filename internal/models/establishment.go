package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Establishment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
	Phone       string `gorm:"size:20" json:"phone"`
	Category    string `gorm:"size:20;not null" json:"category"`

	Street       string `gorm:"size:150" json:"street"`
	Number       string `gorm:"size:20" json:"number"`
	Neighborhood string `gorm:"size:100" json:"neighborhood"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:2" json:"state"`
	ZipCode      string `gorm:"size:10" json:"zipCode"`

	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	CoverImageURL *string `gorm:"size:255" json:"coverImageUrl"`

	// One establishment per real-world place per provider. NULLs do not
	// collide under the Postgres unique index.
	GooglePlaceID *string `gorm:"size:255;uniqueIndex" json:"googlePlaceId"`

	OwnerID string `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	Reviews []Review `gorm:"constraint:OnDelete:CASCADE;" json:"reviews"`

	// Derived, never persisted: recomputed from Reviews on every read.
	AccessibilityScore *float64 `gorm:"-" json:"accessibilityScore"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *Establishment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
