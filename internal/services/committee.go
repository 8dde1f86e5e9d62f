package services

import (
	"errors"
	"time"

	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

type CommitteeService struct {
	db *gorm.DB
}

func NewCommitteeService(db *gorm.DB) *CommitteeService {
	return &CommitteeService{db: db}
}

type CommitteeListRequest struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Name   string `form:"name"`
}

type CommitteeListResponse struct {
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
	Items  []models.Committee `json:"items"`
}

type CreateCommitteeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCommitteeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type AddMemberRoleRequest struct {
	MemberID  string     `json:"member_id" binding:"required"`
	Role      string     `json:"role" binding:"required,oneof=leader secretary treasurer member coordinator"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (s *CommitteeService) List(req *CommitteeListRequest) (*CommitteeListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 100
	}

	var committees []models.Committee
	var total int64

	query := s.db.Model(&models.Committee{})
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}

	query.Count(&total)

	if err := query.Offset(req.Offset).Limit(req.Limit).
		Order("name").Find(&committees).Error; err != nil {
		return nil, err
	}

	return &CommitteeListResponse{Total: total, Limit: req.Limit, Offset: req.Offset, Items: committees}, nil
}

func (s *CommitteeService) GetByID(id string) (*models.Committee, error) {
	var committee models.Committee
	if err := s.db.Preload("MemberRoles").Preload("MemberRoles.Member").
		First(&committee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommitteeNotFound
		}
		return nil, err
	}
	return &committee, nil
}

func (s *CommitteeService) Create(req *CreateCommitteeRequest) (*models.Committee, error) {
	committee := models.Committee{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.db.Create(&committee).Error; err != nil {
		return nil, err
	}
	return &committee, nil
}

func (s *CommitteeService) Update(id string, req *UpdateCommitteeRequest) (*models.Committee, error) {
	committee, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(committee).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return committee, nil
}

func (s *CommitteeService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("committee_id = ?", id).
			Delete(&models.CommitteeMemberRole{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Committee{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCommitteeNotFound
		}
		return nil
	})
}

// AddMemberRole puts a member on the committee with the given role.
func (s *CommitteeService) AddMemberRole(committeeID string, req *AddMemberRoleRequest) (*models.CommitteeMemberRole, error) {
	if _, err := s.GetByID(committeeID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.Member{}).Where("id = ?", req.MemberID).Count(&count)
	if count == 0 {
		return nil, ErrMemberNotFound
	}

	role := models.CommitteeMemberRole{
		CommitteeID: committeeID,
		MemberID:    req.MemberID,
		Role:        req.Role,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *CommitteeService) RemoveMemberRole(committeeID, roleID string) error {
	result := s.db.Where("id = ? AND committee_id = ?", roleID, committeeID).
		Delete(&models.CommitteeMemberRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoleNotFound
	}
	return nil
}
