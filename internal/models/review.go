package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title   *string `gorm:"size:150" json:"title"`
	Rating  int     `gorm:"not null" json:"rating"`
	Comment *string `gorm:"size:1000" json:"comment"`

	// The composite index is the authority for one-review-per-user; the
	// application-level pre-check only produces a friendlier message.
	EstablishmentID string        `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_establishment" json:"establishmentId"`
	Establishment   Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AuthorID string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_author_establishment" json:"authorId"`
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
