package services

import (
	"fmt"

	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/models"
	"github.com/thecooperator/backend/internal/repository"
	"gorm.io/gorm"
)

// ScoreService computes participation scores and appends them to the
// score_entries audit trail. Entries are never updated in place.
type ScoreService struct {
	db      *gorm.DB
	tasks   *repository.TaskRepository
	votes   *repository.VoteRepository
	scores  *repository.ScoreRepository
	perTask int
	perVote int
}

func NewScoreService(db *gorm.DB, policy *config.PolicyConfig) *ScoreService {
	return &ScoreService{
		db:      db,
		tasks:   repository.NewTaskRepository(db),
		votes:   repository.NewVoteRepository(db),
		scores:  repository.NewScoreRepository(db),
		perTask: policy.ScorePerCompletedTask,
		perVote: policy.ScorePerVote,
	}
}

// RecomputeUser computes the user's current participation score from their
// completed tasks and cast votes and appends a ScoreEntry.
func (s *ScoreService) RecomputeUser(userID string) (*models.ScoreEntry, error) {
	completed, err := s.tasks.CountCompletedTasksForUser(userID)
	if err != nil {
		return nil, err
	}
	votes, err := s.votes.CountVotesForUser(userID)
	if err != nil {
		return nil, err
	}

	entry := &models.ScoreEntry{
		UserID: userID,
		Score:  int(completed)*s.perTask + int(votes)*s.perVote,
	}
	if err := s.scores.CreateScoreEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecomputeAll recomputes every user's score. Individual failures are logged
// and skipped; the sweep continues with the remaining users.
func (s *ScoreService) RecomputeAll() (int, error) {
	users, err := s.scores.ListUsers()
	if err != nil {
		return 0, err
	}

	recomputed := 0
	for _, user := range users {
		if _, err := s.RecomputeUser(user.ID); err != nil {
			LogError("Scores", "Recompute",
				fmt.Sprintf("failed to recompute score for user %s: %v", user.ID, err),
				nil, "", "", nil)
			continue
		}
		recomputed++
	}
	return recomputed, nil
}

// Scorecard is one user's latest participation score.
type Scorecard struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Score    int    `json:"score"`
}

// Scorecards returns the most recent score entry per user, joined with the
// user's display fields. Users with no score entries yet are listed at zero.
func (s *ScoreService) Scorecards() ([]Scorecard, error) {
	users, err := s.scores.ListUsers()
	if err != nil {
		return nil, err
	}

	latest, err := s.scores.LatestScorePerUser()
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]int, len(latest))
	for _, e := range latest {
		byUser[e.UserID] = e.Score
	}

	cards := make([]Scorecard, 0, len(users))
	for _, u := range users {
		cards = append(cards, Scorecard{
			UserID:   u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Score:    byUser[u.ID],
		})
	}
	return cards, nil
}

// History returns a user's score entries, newest first.
func (s *ScoreService) History(userID string, limit int) ([]models.ScoreEntry, error) {
	return s.scores.ListScoreEntriesForUser(userID, limit)
}
