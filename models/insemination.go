// models/insemination.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/validators"
)

// Inseminator is a technician licensed to serve cows.
type Inseminator struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName     string    `gorm:"size:20;not null" json:"firstName"`
	LastName      string    `gorm:"size:20;not null" json:"lastName"`
	PhoneNumber   string    `gorm:"size:15;uniqueIndex;not null" json:"phoneNumber"`
	Sex           string    `gorm:"size:6;not null" json:"sex"`
	Company       string    `gorm:"size:50" json:"company,omitempty"`
	LicenseNumber string    `gorm:"size:25;uniqueIndex" json:"licenseNumber,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (i *Inseminator) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if err := validators.ValidateUserSex(i.Sex); err != nil {
		return err
	}
	return validators.ValidateUserPhone(i.PhoneNumber)
}

// Insemination is one service of a cow, optionally linked to the pregnancy
// it produced. Records linked to a pregnancy cannot be deleted.
type Insemination struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	CowID              uuid.UUID    `gorm:"type:uuid;index;not null" json:"cowId"`
	Cow                *Cow         `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	InseminatorID      uuid.UUID    `gorm:"type:uuid;not null" json:"inseminatorId"`
	Inseminator        *Inseminator `gorm:"foreignKey:InseminatorID" json:"inseminator,omitempty"`
	DateOfInsemination time.Time    `gorm:"not null" json:"dateOfInsemination"`
	Success            bool         `gorm:"not null;default:false" json:"success"`
	Notes              string       `json:"notes,omitempty"`
	PregnancyID        *uuid.UUID   `gorm:"type:uuid" json:"pregnancyId,omitempty"`
	Pregnancy          *Pregnancy   `gorm:"foreignKey:PregnancyID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (i *Insemination) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.DateOfInsemination.IsZero() {
		i.DateOfInsemination = time.Now()
	}

	var cow Cow
	if err := tx.First(&cow, "id = ?", i.CowID).Error; err != nil {
		return &validators.ValidationError{
			Field: "cow", Code: "unknown_cow", Message: "the referenced cow does not exist",
		}
	}
	return validators.ValidateInseminationCow(cow.Gender, cow.AvailabilityStatus,
		cow.CurrentPregnancyStatus, cow.Age())
}

func (i *Insemination) BeforeDelete(tx *gorm.DB) error {
	var stored Insemination
	if err := tx.Session(&gorm.Session{NewDB: true}).
		First(&stored, "id = ?", i.ID).Error; err != nil {
		return err
	}
	return validators.ValidateInseminationDeletion(stored.PregnancyID != nil)
}
