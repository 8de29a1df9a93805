// models/milk.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/validators"
)

// Milk is a single milking entry. The lactation is resolved automatically to
// the cow's latest one when the record is created.
type Milk struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CowID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"cowId"`
	Cow         *Cow       `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	LactationID *uuid.UUID `gorm:"type:uuid" json:"lactationId,omitempty"`
	Lactation   *Lactation `gorm:"foreignKey:LactationID" json:"-"`
	MilkingDate time.Time  `gorm:"not null" json:"milkingDate"`
	AmountInKgs float64    `gorm:"not null" json:"amountInKgs"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (m *Milk) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.MilkingDate.IsZero() {
		m.MilkingDate = time.Now()
	}
	if err := validators.ValidateMilkAmount(m.AmountInKgs); err != nil {
		return err
	}

	var cow Cow
	if err := tx.First(&cow, "id = ?", m.CowID).Error; err != nil {
		return &validators.ValidationError{
			Field: "cow", Code: "unknown_cow", Message: "the referenced cow does not exist",
		}
	}
	if err := validators.ValidateMilkingCow(cow.Gender, cow.AvailabilityStatus); err != nil {
		return err
	}

	var latest Lactation
	err := tx.Session(&gorm.Session{NewDB: true}).
		Where("cow_id = ?", m.CowID).Order("start_date DESC").First(&latest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hasLactation := err == nil
	stage := ""
	if hasLactation {
		stage = latest.Stage()
	}
	if err := validators.ValidateMilkingLactation(hasLactation, stage); err != nil {
		return err
	}
	if m.LactationID == nil {
		m.LactationID = &latest.ID
	}
	return nil
}

func (m *Milk) BeforeUpdate(tx *gorm.DB) error {
	return validators.ValidateMilkAmount(m.AmountInKgs)
}
