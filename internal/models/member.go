package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member sex values
const (
	SexMale           = "male"
	SexFemale         = "female"
	SexOther          = "other"
	SexPreferNotToSay = "prefer_not_to_say"
)

// Member types
const (
	MemberTypePrimary   = "primary"
	MemberTypeSecondary = "secondary"
)

// Member represents an individual residing in a unit and/or participating in
// the cooperative's activities.
type Member struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	FirstName      string         `gorm:"size:255;not null" json:"first_name"`
	LastName       string         `gorm:"size:255;not null" json:"last_name"`
	DOB            *time.Time     `json:"dob"`
	Email          string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PhoneNumber    string         `gorm:"size:50" json:"phone_number"`
	Occupation     string         `gorm:"size:255" json:"occupation"`
	Sex            string         `gorm:"size:20" json:"sex"`
	Skills         string         `gorm:"type:text" json:"skills"` // JSON array of skill strings
	EducationLevel string         `gorm:"size:100" json:"education_level"`
	MemberType     string         `gorm:"size:20;not null" json:"member_type"` // primary, secondary
	UnitID         *string        `gorm:"size:36;index" json:"unit_id"`
	Unit           *Unit          `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
