package repository

import (
	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

// ScoreRepository is pure data access for the append-only score trail.
type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) CreateScoreEntry(entry *models.ScoreEntry) error {
	return r.db.Create(entry).Error
}

func (r *ScoreRepository) ListScoreEntriesForUser(userID string, limit int) ([]models.ScoreEntry, error) {
	var entries []models.ScoreEntry
	q := r.db.Where("user_id = ?", userID).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}

// LatestScorePerUser returns the most recent score entry for each user.
func (r *ScoreRepository) LatestScorePerUser() ([]models.ScoreEntry, error) {
	var entries []models.ScoreEntry
	sub := r.db.Model(&models.ScoreEntry{}).
		Select("user_id, MAX(timestamp) AS ts").
		Group("user_id")
	err := r.db.Model(&models.ScoreEntry{}).
		Joins("JOIN (?) latest ON score_entries.user_id = latest.user_id AND score_entries.timestamp = latest.ts", sub).
		Find(&entries).Error
	return entries, err
}

func (r *ScoreRepository) ListUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}
