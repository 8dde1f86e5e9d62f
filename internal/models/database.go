package models

import (
	"fmt"

	"github.com/thecooperator/backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Unit{},
		&Member{},
		&Committee{},
		&CommitteeMemberRole{},
		&Task{},
		&Proposal{},
		&Vote{},
		&ScoreEntry{},
		&Todo{},
		&SystemLog{},
		&SchedulerLock{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDemoData inserts a couple of demo units and members into an empty
// database so a fresh install has something to show.
func SeedDemoData() error {
	var unitCount int64
	DB.Model(&Unit{}).Count(&unitCount)
	if unitCount > 0 {
		return nil
	}

	units := []Unit{
		{Label: "Unit 101"},
		{Label: "Unit 102"},
	}
	for i := range units {
		if err := DB.Create(&units[i]).Error; err != nil {
			return err
		}
	}

	members := []Member{
		{
			FirstName:  "Alice",
			LastName:   "Nguyen",
			Email:      "alice@example.com",
			MemberType: MemberTypePrimary,
			UnitID:     &units[0].ID,
		},
		{
			FirstName:  "Bob",
			LastName:   "Keller",
			Email:      "bob@example.com",
			MemberType: MemberTypePrimary,
			UnitID:     &units[1].ID,
		},
	}
	for i := range members {
		if err := DB.Create(&members[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
