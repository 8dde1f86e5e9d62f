package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreEntry is an append-only record of a user's participation score at a
// point in time. Entries are only ever inserted, never updated.
type ScoreEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	Score     int       `gorm:"not null" json:"score"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

func (ScoreEntry) TableName() string { return "score_entries" }

func (e *ScoreEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return nil
}
