// models/heat.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/validators"
)

// Heat is an observed heat sign on a cow. Heat records are append-only:
// the API allows creation and reads but never updates or deletes.
type Heat struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CowID           uuid.UUID `gorm:"type:uuid;index;not null" json:"cowId"`
	Cow             *Cow      `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	ObservationTime time.Time `gorm:"not null" json:"observationTime"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (h *Heat) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.ObservationTime.IsZero() {
		h.ObservationTime = time.Now()
	}

	var cow Cow
	if err := tx.First(&cow, "id = ?", h.CowID).Error; err != nil {
		return &validators.ValidationError{
			Field: "cow", Code: "unknown_cow", Message: "the referenced cow does not exist",
		}
	}
	if err := validators.ValidateHeatCow(cow.Gender, cow.AvailabilityStatus,
		cow.CurrentPregnancyStatus, cow.CurrentProductionStatus, cow.Age()); err != nil {
		return err
	}

	var recent int64
	if err := tx.Session(&gorm.Session{NewDB: true}).Model(&Heat{}).
		Where("cow_id = ? AND observation_time > ? AND observation_time <= ?",
			h.CowID, h.ObservationTime.AddDate(0, 0, -21), h.ObservationTime).
		Count(&recent).Error; err != nil {
		return err
	}
	if err := validators.ValidateHeatSpacing(recent); err != nil {
		return err
	}

	var lastCalving *time.Time
	var latest Pregnancy
	err := tx.Session(&gorm.Session{NewDB: true}).
		Where("cow_id = ? AND date_of_calving IS NOT NULL", h.CowID).
		Order("date_of_calving DESC").First(&latest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		lastCalving = latest.DateOfCalving
	}
	return validators.ValidateHeatAfterCalving(cow.CurrentPregnancyStatus, lastCalving, h.ObservationTime)
}
