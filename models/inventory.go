// models/inventory.go
package models

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/choices"
)

// CowInventory is the single row of running herd totals. It is never written
// by hand: RefreshCowInventory recomputes it from the cow table inside the
// transaction of whichever cow mutation triggered it, so the counters always
// equal a fresh full scan.
type CowInventory struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	TotalNumberOfCows  int64     `gorm:"not null;default:0" json:"totalNumberOfCows"`
	NumberOfMaleCows   int64     `gorm:"not null;default:0" json:"numberOfMaleCows"`
	NumberOfFemaleCows int64     `gorm:"not null;default:0" json:"numberOfFemaleCows"`
	NumberOfSoldCows   int64     `gorm:"not null;default:0" json:"numberOfSoldCows"`
	NumberOfDeadCows   int64     `gorm:"not null;default:0" json:"numberOfDeadCows"`
	LastUpdate         time.Time `gorm:"autoUpdateTime" json:"lastUpdate"`
}

// Saving the inventory appends one audit row, so every refresh leaves a
// trace regardless of whether the counters changed.
func (inv *CowInventory) AfterSave(tx *gorm.DB) error {
	return tx.Create(&CowInventoryUpdateHistory{
		NumberOfCows: inv.TotalNumberOfCows,
	}).Error
}

// CowInventoryUpdateHistory is the append-only audit trail of inventory
// refreshes.
type CowInventoryUpdateHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	NumberOfCows int64     `gorm:"not null;default:0" json:"numberOfCows"`
	DateUpdated  time.Time `gorm:"autoCreateTime" json:"dateUpdated"`
}

// countCows is the full-scan the inventory is defined against.
func countCows(tx *gorm.DB, conds ...any) (int64, error) {
	var n int64
	q := tx.Session(&gorm.Session{NewDB: true}).Model(&Cow{})
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	err := q.Count(&n).Error
	return n, err
}

// RefreshCowInventory recomputes the five herd counters with a full scan of
// the cow table and persists the singleton row, appending one history entry.
// It must run on the same transaction as the cow mutation that triggered it
// so the counters and the mutation commit or abort together.
func RefreshCowInventory(tx *gorm.DB) error {
	var inv CowInventory
	err := tx.Session(&gorm.Session{NewDB: true}).First(&inv, "id = ?", 1).Error
	missing := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !missing {
		return err
	}
	if missing {
		inv = CowInventory{ID: 1}
	}

	if inv.TotalNumberOfCows, err = countCows(tx,
		"availability_status = ?", choices.CowAvailabilityAlive); err != nil {
		return err
	}
	if inv.NumberOfMaleCows, err = countCows(tx,
		"availability_status = ? AND gender = ?", choices.CowAvailabilityAlive, choices.SexMale); err != nil {
		return err
	}
	if inv.NumberOfFemaleCows, err = countCows(tx,
		"availability_status = ? AND gender = ?", choices.CowAvailabilityAlive, choices.SexFemale); err != nil {
		return err
	}
	if inv.NumberOfSoldCows, err = countCows(tx,
		"availability_status = ?", choices.CowAvailabilitySold); err != nil {
		return err
	}
	if inv.NumberOfDeadCows, err = countCows(tx,
		"availability_status = ?", choices.CowAvailabilityDead); err != nil {
		return err
	}

	sess := tx.Session(&gorm.Session{NewDB: true})
	if missing {
		return sess.Create(&inv).Error
	}
	return sess.Save(&inv).Error
}
