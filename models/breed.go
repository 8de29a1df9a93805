// models/breed.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/validators"
)

// CowBreed is one of the recognised breeds kept on the farm. Names are
// restricted to the breed choices and unique.
type CowBreed struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:20;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *CowBreed) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	var existing int64
	if err := tx.Model(&CowBreed{}).Where("name = ?", b.Name).Count(&existing).Error; err != nil {
		return err
	}
	return validators.ValidateBreedName(b.Name, existing)
}

func (b *CowBreed) BeforeUpdate(tx *gorm.DB) error {
	var existing int64
	if err := tx.Model(&CowBreed{}).
		Where("name = ? AND id <> ?", b.Name, b.ID).
		Count(&existing).Error; err != nil {
		return err
	}
	return validators.ValidateBreedName(b.Name, existing)
}
