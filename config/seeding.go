package config

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/choices"
	"github.com/nyumbani-farms/herdbook/models"
	"github.com/nyumbani-farms/herdbook/pkg/logger"
)

// seedLog scopes seeding output under its own component name. Safe to call
// before Connect: a nil base logger yields a no-op logger.
func seedLog() *zap.Logger {
	return logger.Named(Log, "seed")
}

// RunAllSeeding populates the reference tables and the default owner
// account. Each step skips rows that already exist, so seeding is safe to
// run on every start.
func RunAllSeeding() error {
	seedLog().Info("starting database seeding")

	if err := SeedBreeds(); err != nil {
		return err
	}
	if err := SeedPathogens(); err != nil {
		return err
	}
	if err := SeedDiseaseCategories(); err != nil {
		return err
	}
	if err := SeedDefaultOwner(); err != nil {
		return err
	}

	seedLog().Info("database seeding complete")
	return nil
}

// SeedBreeds registers every recognised breed.
func SeedBreeds() error {
	for _, name := range choices.CowBreedChoices {
		var existing models.CowBreed
		err := DB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := DB.Create(&models.CowBreed{Name: name}).Error; err != nil {
			return err
		}
		seedLog().Info("seeded cow breed", zap.String("name", name))
	}
	return nil
}

// SeedPathogens registers the pathogen types.
func SeedPathogens() error {
	for _, name := range choices.PathogenChoices {
		var existing models.Pathogen
		err := DB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := DB.Create(&models.Pathogen{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDiseaseCategories registers the disease categories.
func SeedDiseaseCategories() error {
	for _, name := range choices.DiseaseCategoryChoices {
		var existing models.DiseaseCategory
		err := DB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := DB.Create(&models.DiseaseCategory{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaultOwner creates the initial farm owner account when the user
// table is empty. Credentials come from the environment so fresh installs
// are never left with a well-known password.
func SeedDefaultOwner() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("OWNER_PASSWORD")
	if password == "" {
		seedLog().Warn("OWNER_PASSWORD not set, skipping default owner account")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := models.User{
		Username:     "owner",
		FirstName:    "Farm",
		LastName:     "Owner",
		Email:        os.Getenv("OWNER_EMAIL"),
		Phone:        os.Getenv("OWNER_PHONE"),
		Sex:          choices.SexMale,
		PasswordHash: string(hash),
		Role:         choices.RoleFarmOwner,
	}
	if err := DB.Create(&owner).Error; err != nil {
		return err
	}
	seedLog().Info("seeded default farm owner", zap.String("username", owner.Username))
	return nil
}
