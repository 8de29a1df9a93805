// models/pregnancy.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/choices"
	"github.com/nyumbani-farms/herdbook/validators"
)

// Pregnancy tracks one gestation of a cow from service to its outcome.
// Recording a live or stillborn calving marks the cow as recently calved and
// opens the next lactation in the same transaction.
type Pregnancy struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CowID             uuid.UUID  `gorm:"type:uuid;index;not null" json:"cowId"`
	Cow               *Cow       `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	StartDate         time.Time  `gorm:"not null" json:"startDate"`
	DateOfCalving     *time.Time `json:"dateOfCalving,omitempty"`
	PregnancyStatus   string     `gorm:"size:11;not null;default:'Unconfirmed'" json:"pregnancyStatus"`
	PregnancyNotes    string     `json:"pregnancyNotes,omitempty"`
	CalvingNotes      string     `json:"calvingNotes,omitempty"`
	PregnancyScanDate *time.Time `json:"pregnancyScanDate,omitempty"`
	PregnancyFailed   *time.Time `gorm:"column:pregnancy_failed_date" json:"pregnancyFailedDate,omitempty"`
	PregnancyOutcome  *string    `gorm:"size:11" json:"pregnancyOutcome,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Duration returns the days elapsed since the service, or -1 once the
// pregnancy has ended in a recorded outcome.
func (p *Pregnancy) Duration() int {
	if p.DateOfCalving != nil && p.PregnancyOutcome != nil {
		return -1
	}
	return int(time.Since(p.StartDate).Hours() / 24)
}

// DueDate returns the expected calving date, 285 days after the service, or
// nil once the pregnancy has ended.
func (p *Pregnancy) DueDate() *time.Time {
	if p.PregnancyOutcome != nil {
		return nil
	}
	due := p.StartDate.AddDate(0, 0, 285)
	return &due
}

func (p *Pregnancy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PregnancyStatus == "" {
		p.PregnancyStatus = choices.PregnancyStatusUnconfirmed
	}

	var cow Cow
	if err := tx.First(&cow, "id = ?", p.CowID).Error; err != nil {
		return &validators.ValidationError{
			Field: "cow", Code: "unknown_cow", Message: "the referenced cow does not exist",
		}
	}
	if err := validators.ValidatePregnancyAge(cow.Age(), p.StartDate, cow.DateOfBirth); err != nil {
		return err
	}
	if err := validators.ValidatePregnancyCowStatus(cow.CurrentPregnancyStatus); err != nil {
		return err
	}
	if err := validators.ValidatePregnancyCowAvailability(cow.AvailabilityStatus); err != nil {
		return err
	}
	return p.validateDates()
}

func (p *Pregnancy) BeforeUpdate(tx *gorm.DB) error {
	var cow Cow
	if err := tx.Session(&gorm.Session{NewDB: true}).First(&cow, "id = ?", p.CowID).Error; err != nil {
		return err
	}
	if err := validators.ValidatePregnancyCowAvailability(cow.AvailabilityStatus); err != nil {
		return err
	}
	return p.validateDates()
}

func (p *Pregnancy) validateDates() error {
	now := time.Now()
	if err := validators.ValidatePregnancyDates(p.StartDate, p.DateOfCalving, now); err != nil {
		return err
	}
	if err := validators.ValidatePregnancyStatus(p.PregnancyStatus, p.StartDate, p.PregnancyFailed, now); err != nil {
		return err
	}
	if err := validators.ValidatePregnancyScanDate(p.PregnancyScanDate, p.StartDate, now); err != nil {
		return err
	}
	if err := validators.ValidatePregnancyFailedDate(p.PregnancyFailed, p.StartDate, p.PregnancyStatus, now); err != nil {
		return err
	}
	return validators.ValidatePregnancyOutcome(p.PregnancyOutcome, p.PregnancyStatus, p.DateOfCalving)
}

// AfterCreate marks the cow pregnant once the record is in.
func (p *Pregnancy) AfterCreate(tx *gorm.DB) error {
	if p.PregnancyOutcome != nil {
		return p.settleOutcome(tx)
	}
	sess := tx.Session(&gorm.Session{NewDB: true})
	var cow Cow
	if err := sess.First(&cow, "id = ?", p.CowID).Error; err != nil {
		return err
	}
	cow.CurrentPregnancyStatus = choices.CowPregnancyPregnant
	cow.CurrentProductionStatus = choices.ProductionStatusPregnantNotLactating
	return sess.Save(&cow).Error
}

func (p *Pregnancy) AfterUpdate(tx *gorm.DB) error {
	return p.settleOutcome(tx)
}

// settleOutcome reacts to a recorded calving: the cow becomes a recently
// calved milking cow and a new lactation starts the day of calving, closing
// any open one. A failed pregnancy reopens the cow instead.
func (p *Pregnancy) settleOutcome(tx *gorm.DB) error {
	if p.PregnancyOutcome == nil {
		return nil
	}
	sess := tx.Session(&gorm.Session{NewDB: true})
	var cow Cow
	if err := sess.First(&cow, "id = ?", p.CowID).Error; err != nil {
		return err
	}

	if *p.PregnancyOutcome == choices.PregnancyOutcomeMiscarriage ||
		p.PregnancyStatus == choices.PregnancyStatusFailed {
		cow.CurrentPregnancyStatus = choices.CowPregnancyOpen
		cow.CurrentProductionStatus = choices.ProductionStatusOpen
		return sess.Save(&cow).Error
	}

	if p.DateOfCalving == nil {
		return nil
	}
	cow.CurrentPregnancyStatus = choices.CowPregnancyCalved
	cow.CurrentProductionStatus = choices.ProductionStatusPregnantAndLactating
	cow.Category = choices.CowCategoryMilkingCow
	if err := sess.Save(&cow).Error; err != nil {
		return err
	}
	return startLactationAfterCalving(sess, p)
}

func startLactationAfterCalving(tx *gorm.DB, p *Pregnancy) error {
	var previous Lactation
	err := tx.Where("cow_id = ?", p.CowID).Order("start_date DESC").First(&previous).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		// Already opened for this calving.
		if previous.PregnancyID != nil && *previous.PregnancyID == p.ID {
			return nil
		}
		if previous.ActualEndDate == nil {
			end := p.DateOfCalving.AddDate(0, 0, -1)
			previous.ActualEndDate = &end
			if err := tx.Save(&previous).Error; err != nil {
				return err
			}
		}
		return tx.Create(&Lactation{
			CowID:           p.CowID,
			StartDate:       *p.DateOfCalving,
			PregnancyID:     &p.ID,
			LactationNumber: previous.LactationNumber + 1,
		}).Error
	}
	return tx.Create(&Lactation{
		CowID:       p.CowID,
		StartDate:   *p.DateOfCalving,
		PregnancyID: &p.ID,
	}).Error
}
