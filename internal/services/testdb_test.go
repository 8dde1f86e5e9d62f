package services

import (
	"testing"

	"github.com/thecooperator/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a fresh in-memory sqlite database with the full schema
// migrated. Each test gets its own database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Proposal{},
		&models.Vote{},
		&models.ScoreEntry{},
		&models.SchedulerLock{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		FullName: "Test User",
		Role:     models.RoleResident,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func createTestTask(t *testing.T, db *gorm.DB, title, status string, assigneeID *string) *models.Task {
	t.Helper()
	task := &models.Task{
		Title:      title,
		Status:     status,
		AssigneeID: assigneeID,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return task
}

func createTestProposal(t *testing.T, db *gorm.DB, title string) *models.Proposal {
	t.Helper()
	proposal := &models.Proposal{Title: title}
	if err := db.Create(proposal).Error; err != nil {
		t.Fatalf("failed to create proposal %s: %v", title, err)
	}
	return proposal
}
