package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unit represents an apartment, townhouse or lot managed by the cooperative.
type Unit struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Label     string         `gorm:"size:255;not null" json:"label"` // e.g. "Unit 2B" or "Lot #15"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Unit) TableName() string { return "units" }

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
