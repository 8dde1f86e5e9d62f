package services

import (
	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	Units         int64            `json:"units"`
	Members       int64            `json:"members"`
	Users         int64            `json:"users"`
	Committees    int64            `json:"committees"`
	Tasks         int64            `json:"tasks"`
	TasksByStatus map[string]int64 `json:"tasks_by_status"`
	Proposals     int64            `json:"proposals"`
	Votes         int64            `json:"votes"`
	ScoreEntries  int64            `json:"score_entries"`
}

func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		TasksByStatus: make(map[string]int64),
	}

	s.db.Model(&models.Unit{}).Count(&stats.Units)
	s.db.Model(&models.Member{}).Count(&stats.Members)
	s.db.Model(&models.User{}).Count(&stats.Users)
	s.db.Model(&models.Committee{}).Count(&stats.Committees)
	s.db.Model(&models.Task{}).Count(&stats.Tasks)
	s.db.Model(&models.Proposal{}).Count(&stats.Proposals)
	s.db.Model(&models.Vote{}).Count(&stats.Votes)
	s.db.Model(&models.ScoreEntry{}).Count(&stats.ScoreEntries)

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := s.db.Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.TasksByStatus[r.Status] = r.Count
	}

	return stats, nil
}
