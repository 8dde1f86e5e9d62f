package services

import (
	"testing"
	"time"

	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

func newTestScoreService(db *gorm.DB) *ScoreService {
	return NewScoreService(db, &config.PolicyConfig{
		ScorePerCompletedTask: 10,
		ScorePerVote:          5,
	})
}

func TestRecomputeUser_Formula(t *testing.T) {
	db := openTestDB(t)
	svc := newTestScoreService(db)
	user := createTestUser(t, db, "alice@example.com")
	proposalA := createTestProposal(t, db, "Proposal A")
	proposalB := createTestProposal(t, db, "Proposal B")
	proposalC := createTestProposal(t, db, "Proposal C")

	// 2 completed tasks, 1 still in progress, 3 votes
	createTestTask(t, db, "Done chore", models.TaskStatusDone, &user.ID)
	createTestTask(t, db, "Another done chore", models.TaskStatusDone, &user.ID)
	createTestTask(t, db, "Ongoing chore", models.TaskStatusInProgress, &user.ID)
	for _, p := range []*models.Proposal{proposalA, proposalB, proposalC} {
		vote := &models.Vote{ProposalID: p.ID, UserID: user.ID, Choice: "yes"}
		if err := db.Create(vote).Error; err != nil {
			t.Fatalf("failed to create vote: %v", err)
		}
	}

	entry, err := svc.RecomputeUser(user.ID)
	if err != nil {
		t.Fatalf("RecomputeUser failed: %v", err)
	}
	if entry.Score != 2*10+3*5 {
		t.Errorf("Score = %d, expected %d", entry.Score, 2*10+3*5)
	}
	if entry.UserID != user.ID {
		t.Errorf("UserID = %q, expected %q", entry.UserID, user.ID)
	}
	if entry.Timestamp.IsZero() {
		t.Error("entry should get a timestamp on create")
	}
}

func TestRecomputeUser_ZeroActivity(t *testing.T) {
	db := openTestDB(t)
	svc := newTestScoreService(db)
	user := createTestUser(t, db, "alice@example.com")

	entry, err := svc.RecomputeUser(user.ID)
	if err != nil {
		t.Fatalf("RecomputeUser failed: %v", err)
	}
	if entry.Score != 0 {
		t.Errorf("Score = %d, expected 0", entry.Score)
	}
}

func TestRecomputeUser_AppendOnly(t *testing.T) {
	db := openTestDB(t)
	svc := newTestScoreService(db)
	user := createTestUser(t, db, "alice@example.com")

	if _, err := svc.RecomputeUser(user.ID); err != nil {
		t.Fatalf("first recompute failed: %v", err)
	}
	createTestTask(t, db, "Done chore", models.TaskStatusDone, &user.ID)
	if _, err := svc.RecomputeUser(user.ID); err != nil {
		t.Fatalf("second recompute failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.ScoreEntry{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	if count != 2 {
		t.Errorf("each recompute must append a new entry, got %d", count)
	}
}

func TestRecomputeAll(t *testing.T) {
	db := openTestDB(t)
	svc := newTestScoreService(db)
	createTestUser(t, db, "alice@example.com")
	createTestUser(t, db, "bob@example.com")
	createTestUser(t, db, "carol@example.com")

	count, err := svc.RecomputeAll()
	if err != nil {
		t.Fatalf("RecomputeAll failed: %v", err)
	}
	if count != 3 {
		t.Errorf("recomputed %d users, expected 3", count)
	}

	var entries int64
	if err := db.Model(&models.ScoreEntry{}).Count(&entries).Error; err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	if entries != 3 {
		t.Errorf("expected one entry per user, got %d", entries)
	}
}

func TestScorecards(t *testing.T) {
	db := openTestDB(t)
	svc := newTestScoreService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	// Alice has an old and a newer entry; only the latest should show.
	now := time.Now()
	entries := []models.ScoreEntry{
		{UserID: alice.ID, Score: 10, Timestamp: now.Add(-2 * time.Hour)},
		{UserID: alice.ID, Score: 25, Timestamp: now.Add(-1 * time.Hour)},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("failed to create score entry: %v", err)
		}
	}

	cards, err := svc.Scorecards()
	if err != nil {
		t.Fatalf("Scorecards failed: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 scorecards, got %d", len(cards))
	}

	byUser := make(map[string]Scorecard, len(cards))
	for _, c := range cards {
		byUser[c.UserID] = c
	}
	if byUser[alice.ID].Score != 25 {
		t.Errorf("alice's score = %d, expected the latest entry 25", byUser[alice.ID].Score)
	}
	if byUser[bob.ID].Score != 0 {
		t.Errorf("bob has no entries, score should default to 0, got %d", byUser[bob.ID].Score)
	}
	if byUser[alice.ID].Email != "alice@example.com" {
		t.Errorf("scorecard should carry the user's email, got %q", byUser[alice.ID].Email)
	}
}

func TestHistory(t *testing.T) {
	db := openTestDB(t)
	svc := newTestScoreService(db)
	user := createTestUser(t, db, "alice@example.com")

	now := time.Now()
	for i := 0; i < 5; i++ {
		entry := models.ScoreEntry{
			UserID:    user.ID,
			Score:     i * 10,
			Timestamp: now.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("failed to create score entry: %v", err)
		}
	}

	history, err := svc.History(user.ID, 3)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries with limit 3, got %d", len(history))
	}
	if history[0].Score != 40 {
		t.Errorf("history should be newest first, got leading score %d", history[0].Score)
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.After(history[i-1].Timestamp) {
			t.Error("history should be ordered newest first")
		}
	}
}
