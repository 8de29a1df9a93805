// models/cow.go
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/choices"
	"github.com/nyumbani-farms/herdbook/validators"
)

// Cow is an individual animal on the farm. Gender is immutable after
// registration; availability, pregnancy and production statuses must stay
// consistent with the cow's sex and age. Every create, update or delete of a
// cow refreshes the herd inventory within the same transaction.
type Cow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:35;not null" json:"name"`
	BreedID   uuid.UUID `gorm:"type:uuid;not null" json:"breedId"`
	Breed     *CowBreed `gorm:"foreignKey:BreedID" json:"breed,omitempty"`
	TagNumber string    `gorm:"size:20;uniqueIndex" json:"tagNumber"`
	TagSerial int       `gorm:"not null" json:"-"`

	DateOfBirth time.Time `gorm:"not null" json:"dateOfBirth"`
	Gender      string    `gorm:"size:6;not null" json:"gender"`

	AvailabilityStatus      string `gorm:"size:5;not null;default:'Alive'" json:"availabilityStatus"`
	CurrentPregnancyStatus  string `gorm:"size:12;not null;default:'Unavailable'" json:"currentPregnancyStatus"`
	Category                string `gorm:"size:11;not null;default:'Calf'" json:"category"`
	CurrentProductionStatus string `gorm:"size:22;not null;default:'Calf'" json:"currentProductionStatus"`

	IsBought bool       `gorm:"not null;default:false" json:"isBought"`
	SireID   *uuid.UUID `gorm:"type:uuid" json:"sireId,omitempty"`
	Sire     *Cow       `gorm:"foreignKey:SireID" json:"-"`
	DamID    *uuid.UUID `gorm:"type:uuid" json:"damId,omitempty"`
	Dam      *Cow       `gorm:"foreignKey:DamID" json:"-"`

	DateIntroducedInFarm time.Time  `gorm:"not null" json:"dateIntroducedInFarm"`
	DateOfDeath          *time.Time `json:"dateOfDeath,omitempty"`

	// Filled on load, not stored.
	AgeInDays int `gorm:"-" json:"ageInDays"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Age returns the cow's age in days as of now.
func (c *Cow) Age() int {
	return int(time.Since(c.DateOfBirth).Hours() / 24)
}

// AgeInFarm returns the days elapsed since the cow joined the farm.
func (c *Cow) AgeInFarm() int {
	return int(time.Since(c.DateIntroducedInFarm).Hours() / 24)
}

func (c *Cow) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.DateIntroducedInFarm.IsZero() {
		c.DateIntroducedInFarm = time.Now()
	}
	if c.AvailabilityStatus == "" {
		c.AvailabilityStatus = choices.CowAvailabilityAlive
	}
	if c.CurrentPregnancyStatus == "" {
		c.CurrentPregnancyStatus = choices.CowPregnancyUnavailable
	}
	if c.Category == "" {
		c.Category = choices.CowCategoryCalf
	}
	if c.CurrentProductionStatus == "" {
		c.CurrentProductionStatus = choices.ProductionStatusCalf
	}

	if err := c.validateCreate(tx); err != nil {
		return err
	}
	return c.assignTagNumber(tx)
}

func (c *Cow) AfterCreate(tx *gorm.DB) error {
	return RefreshCowInventory(tx)
}

func (c *Cow) BeforeUpdate(tx *gorm.DB) error {
	return c.validateUpdate(tx)
}

func (c *Cow) AfterUpdate(tx *gorm.DB) error {
	return RefreshCowInventory(tx)
}

func (c *Cow) AfterDelete(tx *gorm.DB) error {
	return RefreshCowInventory(tx)
}

// assignTagNumber derives the display identifier from the breed prefix, the
// birth year and a farm-wide serial, e.g. "FR-2023-42".
func (c *Cow) assignTagNumber(tx *gorm.DB) error {
	var breed CowBreed
	if err := tx.First(&breed, "id = ?", c.BreedID).Error; err != nil {
		return &validators.ValidationError{
			Field: "breed", Code: "unknown_breed", Message: "the referenced breed does not exist",
		}
	}
	var lastSerial int
	row := tx.Model(&Cow{}).Unscoped().Select("COALESCE(MAX(tag_serial), 0)").Row()
	if err := row.Scan(&lastSerial); err != nil {
		return err
	}
	c.TagSerial = lastSerial + 1
	prefix := strings.ToUpper(breed.Name)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	c.TagNumber = fmt.Sprintf("%s-%d-%d", prefix, c.DateOfBirth.Year(), c.TagSerial)
	return nil
}

func (c *Cow) validateCreate(tx *gorm.DB) error {
	now := time.Now()

	var sameName int64
	if err := tx.Model(&Cow{}).Where("name = ?", c.Name).Count(&sameName).Error; err != nil {
		return err
	}
	if err := validators.ValidateCowName(c.Name, sameName); err != nil {
		return err
	}
	if err := validators.ValidateCowBirthDate(c.DateOfBirth, now); err != nil {
		return err
	}
	if err := validators.ValidateCowGender(c.Gender); err != nil {
		return err
	}

	sireGender, damGender, err := c.parentGenders(tx)
	if err != nil {
		return err
	}
	if err := validators.ValidateSireDamRelationship(sireGender, damGender); err != nil {
		return err
	}
	return c.validateState()
}

func (c *Cow) validateUpdate(tx *gorm.DB) error {
	var stored Cow
	if err := tx.Session(&gorm.Session{NewDB: true}).
		Select("gender").First(&stored, "id = ?", c.ID).Error; err != nil {
		return err
	}
	if err := validators.ValidateGenderUpdate(stored.Gender, c.Gender); err != nil {
		return err
	}
	return c.validateState()
}

// validateState runs the age and gender dependent status checks shared by
// create and update.
func (c *Cow) validateState() error {
	age := c.Age()
	if err := validators.ValidateCowAvailability(c.AvailabilityStatus, c.DateOfDeath); err != nil {
		return err
	}
	if err := validators.ValidateCowPregnancyStatus(c.CurrentPregnancyStatus, c.Gender, age); err != nil {
		return err
	}
	if err := validators.ValidateCowCategory(c.Category, c.Gender, age, c.IsBought); err != nil {
		return err
	}
	return validators.ValidateCowProductionStatus(c.CurrentProductionStatus, c.Gender, age)
}

func (c *Cow) parentGenders(tx *gorm.DB) (sire *string, dam *string, err error) {
	if c.SireID != nil {
		var s Cow
		if err = tx.Select("gender").First(&s, "id = ?", *c.SireID).Error; err != nil {
			return nil, nil, &validators.ValidationError{
				Field: "sire", Code: "unknown_sire", Message: "the referenced sire does not exist",
			}
		}
		sire = &s.Gender
	}
	if c.DamID != nil {
		var d Cow
		if err = tx.Select("gender").First(&d, "id = ?", *c.DamID).Error; err != nil {
			return nil, nil, &validators.ValidationError{
				Field: "dam", Code: "unknown_dam", Message: "the referenced dam does not exist",
			}
		}
		dam = &d.Gender
	}
	return sire, dam, nil
}

func (c *Cow) AfterFind(tx *gorm.DB) error {
	c.AgeInDays = c.Age()
	return nil
}
