// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/choices"
	"github.com/nyumbani-farms/herdbook/validators"
)

// User is a member of the farm staff. Role is one of the five farm roles and
// drives every permission check in the API.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:45;uniqueIndex;not null" json:"username"`
	FirstName    string    `gorm:"size:20;not null" json:"firstName"`
	LastName     string    `gorm:"size:20;not null" json:"lastName"`
	Email        string    `gorm:"size:100;uniqueIndex" json:"email"`
	Phone        string    `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	Sex          string    `gorm:"size:6;not null" json:"sex"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:30;not null;default:'Farm Worker'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = choices.RoleFarmWorker
	}
	return u.validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	return u.validate()
}

func (u *User) validate() error {
	if err := validators.ValidateUserRole(u.Role); err != nil {
		return err
	}
	if err := validators.ValidateUserSex(u.Sex); err != nil {
		return err
	}
	return validators.ValidateUserPhone(u.Phone)
}
