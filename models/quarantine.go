// models/quarantine.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/validators"
)

// QuarantineRecord isolates a cow for a reason and a date range. The end
// date is open while the quarantine is ongoing.
type QuarantineRecord struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CowID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"cowId"`
	Cow       *Cow       `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	Reason    string     `gorm:"size:35;not null" json:"reason"`
	StartDate time.Time  `gorm:"not null" json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Notes     string     `gorm:"size:100" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (q *QuarantineRecord) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.StartDate.IsZero() {
		q.StartDate = time.Now()
	}
	return q.validate(tx)
}

func (q *QuarantineRecord) BeforeUpdate(tx *gorm.DB) error {
	return q.validate(tx)
}

func (q *QuarantineRecord) validate(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, "id = ?", q.CowID).Error; err != nil {
		return &validators.ValidationError{
			Field: "cow", Code: "unknown_cow", Message: "the referenced cow does not exist",
		}
	}
	if err := validators.ValidateQuarantineReason(q.Reason, cow.Gender, cow.IsBought); err != nil {
		return err
	}
	return validators.ValidateQuarantineDates(q.StartDate, q.EndDate)
}
