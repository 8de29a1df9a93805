// models/disease.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/validators"
)

// Pathogen names the agent behind a disease.
type Pathogen struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:10;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (p *Pathogen) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return validators.ValidatePathogenName(p.Name)
}

// DiseaseCategory groups diseases for reporting.
type DiseaseCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:20;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (c *DiseaseCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return validators.ValidateDiseaseCategoryName(c.Name)
}

// Symptom is an observed sign of illness, linkable to many diseases.
type Symptom struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	DateObserved time.Time `gorm:"not null" json:"dateObserved"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (s *Symptom) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.DateObserved.IsZero() {
		s.DateObserved = time.Now()
	}
	return validators.ValidateSymptomDate(s.DateObserved, time.Now())
}

// Disease is an outbreak affecting one or more cows. Recovery state and the
// recovery date must agree, and a recovered disease needs at least one
// treatment on record.
type Disease struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string           `gorm:"size:255;uniqueIndex;not null" json:"name"`
	PathogenID    uuid.UUID        `gorm:"type:uuid;not null" json:"pathogenId"`
	Pathogen      *Pathogen        `gorm:"foreignKey:PathogenID" json:"pathogen,omitempty"`
	CategoryID    uuid.UUID        `gorm:"type:uuid;not null" json:"categoryId"`
	Category      *DiseaseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	DateReported  time.Time        `gorm:"not null" json:"dateReported"`
	IsRecovered   bool             `gorm:"not null;default:false" json:"isRecovered"`
	RecoveredDate *time.Time       `json:"recoveredDate,omitempty"`
	Notes         string           `json:"notes,omitempty"`

	Cows     []Cow     `gorm:"many2many:disease_cows" json:"cows,omitempty"`
	Symptoms []Symptom `gorm:"many2many:disease_symptoms" json:"symptoms,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *Disease) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.DateReported.IsZero() {
		d.DateReported = time.Now()
	}
	return d.validate(tx)
}

func (d *Disease) BeforeUpdate(tx *gorm.DB) error {
	return d.validate(tx)
}

func (d *Disease) validate(tx *gorm.DB) error {
	if err := validators.ValidateDiseaseFields(d.Name, d.PathogenID != uuid.Nil); err != nil {
		return err
	}
	if err := validators.ValidateDiseaseRecovery(d.IsRecovered, d.RecoveredDate, d.DateReported, time.Now()); err != nil {
		return err
	}
	var treatments int64
	if err := tx.Session(&gorm.Session{NewDB: true}).Model(&Treatment{}).
		Where("disease_id = ?", d.ID).Count(&treatments).Error; err != nil {
		return err
	}
	return validators.ValidateDiseaseTreatments(d.IsRecovered, treatments)
}

// Treatment is one course of treatment applied to a cow for a disease.
type Treatment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DiseaseID       uuid.UUID `gorm:"type:uuid;index;not null" json:"diseaseId"`
	Disease         *Disease  `gorm:"foreignKey:DiseaseID" json:"disease,omitempty"`
	CowID           uuid.UUID `gorm:"type:uuid;index;not null" json:"cowId"`
	Cow             *Cow      `gorm:"foreignKey:CowID" json:"cow,omitempty"`
	DateOfTreatment time.Time `gorm:"not null" json:"dateOfTreatment"`
	TreatmentPerDay int       `gorm:"not null;default:1" json:"treatmentPerDay"`
	Description     string    `json:"description,omitempty"`
	Notes           string    `json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (t *Treatment) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.DateOfTreatment.IsZero() {
		t.DateOfTreatment = time.Now()
	}
	return validators.ValidateTreatmentDate(t.DateOfTreatment, time.Now())
}
