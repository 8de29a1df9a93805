// models/lactation.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/choices"
	"github.com/nyumbani-farms/herdbook/validators"
)

// Lactation is one milking cycle of a cow. Lactations open automatically
// when a calving is recorded; manual entry exists for bought cows whose
// history happened elsewhere and therefore carries no pregnancy link.
type Lactation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CowID           uuid.UUID  `gorm:"type:uuid;index;not null" json:"cowId"`
	Cow             *Cow       `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	StartDate       time.Time  `gorm:"not null" json:"startDate"`
	LactationNumber int        `gorm:"not null;default:1" json:"lactationNumber"`
	PregnancyID     *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"pregnancyId,omitempty"`
	Pregnancy       *Pregnancy `gorm:"foreignKey:PregnancyID" json:"-"`
	ActualEndDate   *time.Time `json:"actualEndDate,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// DaysInLactation counts from the start date to the end date, or to today
// while the lactation is open.
func (l *Lactation) DaysInLactation() int {
	if l.ActualEndDate != nil {
		return int(l.ActualEndDate.Sub(l.StartDate).Hours() / 24)
	}
	return int(time.Since(l.StartDate).Hours() / 24)
}

// Stage derives the lactation stage from the days in lactation.
func (l *Lactation) Stage() string {
	if l.ActualEndDate != nil {
		return choices.LactationStageEnded
	}
	days := l.DaysInLactation()
	switch {
	case days <= 100:
		return choices.LactationStageEarly
	case days <= 200:
		return choices.LactationStageMid
	case days <= 275:
		return choices.LactationStageLate
	default:
		return choices.LactationStageDry
	}
}

func (l *Lactation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.LactationNumber == 0 {
		l.LactationNumber = 1
	}
	return l.validate(tx)
}

func (l *Lactation) BeforeUpdate(tx *gorm.DB) error {
	return l.validate(tx)
}

func (l *Lactation) validate(tx *gorm.DB) error {
	var cow Cow
	if err := tx.Session(&gorm.Session{NewDB: true}).First(&cow, "id = ?", l.CowID).Error; err != nil {
		return &validators.ValidationError{
			Field: "cow", Code: "unknown_cow", Message: "the referenced cow does not exist",
		}
	}
	if err := validators.ValidateLactationAge(l.StartDate, cow.DateOfBirth); err != nil {
		return err
	}
	return validators.ValidateLactationFields(l.StartDate, l.ActualEndDate,
		l.PregnancyID != nil, l.LactationNumber, cow.IsBought, cow.Age(), time.Now())
}
