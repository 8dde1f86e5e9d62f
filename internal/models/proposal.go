package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proposal is a matter put to a vote of the cooperative's users.
type Proposal struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Proposal) TableName() string { return "proposals" }

func (p *Proposal) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Vote is a single ballot cast by a user on a proposal. A user may vote at
// most once per proposal, enforced by the composite unique index.
type Vote struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ProposalID string    `gorm:"size:36;not null;uniqueIndex:idx_votes_proposal_user" json:"proposal_id"`
	UserID     string    `gorm:"size:36;not null;uniqueIndex:idx_votes_proposal_user" json:"user_id"`
	Choice     string    `gorm:"size:100;not null" json:"choice"` // free-form, e.g. yes / no / abstain
	CreatedAt  time.Time `json:"created_at"`
}

func (Vote) TableName() string { return "votes" }

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
