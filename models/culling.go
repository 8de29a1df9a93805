// models/culling.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/choices"
	"github.com/nyumbani-farms/herdbook/validators"
)

// CullingRecord marks a cow for removal from the herd. A cow is culled at
// most once; recording the culling flips the cow's production status to
// Culled and its pregnancy status to Unavailable in the same transaction.
type CullingRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CowID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"cowId"`
	Cow         *Cow      `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	Reason      string    `gorm:"size:35;not null" json:"reason"`
	Notes       string    `gorm:"size:100" json:"notes,omitempty"`
	DateCarried time.Time `gorm:"not null" json:"dateCarried"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *CullingRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.DateCarried.IsZero() {
		c.DateCarried = time.Now()
	}
	if err := validators.ValidateCullingReason(c.Reason); err != nil {
		return err
	}
	var cow Cow
	if err := tx.First(&cow, "id = ?", c.CowID).Error; err != nil {
		return &validators.ValidationError{
			Field: "cow", Code: "unknown_cow", Message: "the referenced cow does not exist",
		}
	}
	var existing int64
	if err := tx.Model(&CullingRecord{}).Where("cow_id = ?", c.CowID).Count(&existing).Error; err != nil {
		return err
	}
	return validators.ValidateSingleCulling(existing)
}

// AfterCreate moves the culled cow out of production.
func (c *CullingRecord) AfterCreate(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, "id = ?", c.CowID).Error; err != nil {
		return err
	}
	if cow.CurrentProductionStatus == choices.ProductionStatusCulled {
		return nil
	}
	cow.CurrentProductionStatus = choices.ProductionStatusCulled
	cow.CurrentPregnancyStatus = choices.CowPregnancyUnavailable
	return tx.Session(&gorm.Session{NewDB: true}).Save(&cow).Error
}
