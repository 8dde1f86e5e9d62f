package services

import (
	"errors"

	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

type ProposalService struct {
	db *gorm.DB
}

func NewProposalService(db *gorm.DB) *ProposalService {
	return &ProposalService{db: db}
}

type ProposalListRequest struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Title  string `form:"title"`
}

type ProposalListResponse struct {
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	Items  []models.Proposal `json:"items"`
}

type CreateProposalRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateProposalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (s *ProposalService) List(req *ProposalListRequest) (*ProposalListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 100
	}

	var proposals []models.Proposal
	var total int64

	query := s.db.Model(&models.Proposal{})
	if req.Title != "" {
		query = query.Where("title LIKE ?", "%"+req.Title+"%")
	}

	query.Count(&total)

	if err := query.Offset(req.Offset).Limit(req.Limit).
		Order("created_at DESC").Find(&proposals).Error; err != nil {
		return nil, err
	}

	return &ProposalListResponse{Total: total, Limit: req.Limit, Offset: req.Offset, Items: proposals}, nil
}

func (s *ProposalService) GetByID(id string) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := s.db.First(&proposal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (s *ProposalService) Create(req *CreateProposalRequest) (*models.Proposal, error) {
	proposal := models.Proposal{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.db.Create(&proposal).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (s *ProposalService) Update(id string, req *UpdateProposalRequest) (*models.Proposal, error) {
	proposal, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(proposal).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return proposal, nil
}

func (s *ProposalService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposal_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Proposal{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProposalNotFound
		}
		return nil
	})
}
