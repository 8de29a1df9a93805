// models/weight.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/validators"
)

// WeightRecord is one weighing of a cow. Only live cows can be weighed and
// at most once per calendar date.
type WeightRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CowID       uuid.UUID `gorm:"type:uuid;index;not null" json:"cowId"`
	Cow         *Cow      `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	WeightInKgs float64   `gorm:"not null" json:"weightInKgs"`
	DateTaken   time.Time `gorm:"not null" json:"dateTaken"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (w *WeightRecord) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.DateTaken.IsZero() {
		w.DateTaken = time.Now()
	}
	return w.validate(tx, uuid.Nil)
}

func (w *WeightRecord) BeforeUpdate(tx *gorm.DB) error {
	return w.validate(tx, w.ID)
}

// validate runs the weighing rules; excludeID skips the record itself when
// counting same-day records during an update.
func (w *WeightRecord) validate(tx *gorm.DB, excludeID uuid.UUID) error {
	if err := validators.ValidateWeight(w.WeightInKgs); err != nil {
		return err
	}

	var cow Cow
	if err := tx.First(&cow, "id = ?", w.CowID).Error; err != nil {
		return &validators.ValidationError{
			Field: "cow", Code: "unknown_cow", Message: "the referenced cow does not exist",
		}
	}
	if err := validators.ValidateWeighingAvailability(cow.AvailabilityStatus); err != nil {
		return err
	}

	dayStart := time.Date(w.DateTaken.Year(), w.DateTaken.Month(), w.DateTaken.Day(), 0, 0, 0, 0, w.DateTaken.Location())
	q := tx.Session(&gorm.Session{NewDB: true}).Model(&WeightRecord{}).
		Where("cow_id = ? AND date_taken >= ? AND date_taken < ?", w.CowID, dayStart, dayStart.AddDate(0, 0, 1))
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var onDate int64
	if err := q.Count(&onDate).Error; err != nil {
		return err
	}
	return validators.ValidateWeighingFrequency(onDate)
}
