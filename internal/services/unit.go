package services

import (
	"errors"

	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

type UnitService struct {
	db *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{db: db}
}

type UnitListRequest struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Label  string `form:"label"`
}

type UnitListResponse struct {
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Items  []models.Unit `json:"items"`
}

type CreateUnitRequest struct {
	Label string `json:"label" binding:"required"`
}

type UpdateUnitRequest struct {
	Label *string `json:"label"`
}

func (s *UnitService) List(req *UnitListRequest) (*UnitListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 100
	}

	var units []models.Unit
	var total int64

	query := s.db.Model(&models.Unit{})
	if req.Label != "" {
		query = query.Where("label LIKE ?", "%"+req.Label+"%")
	}

	query.Count(&total)

	if err := query.Offset(req.Offset).Limit(req.Limit).
		Order("label").Find(&units).Error; err != nil {
		return nil, err
	}

	return &UnitListResponse{Total: total, Limit: req.Limit, Offset: req.Offset, Items: units}, nil
}

func (s *UnitService) GetByID(id string) (*models.Unit, error) {
	var unit models.Unit
	if err := s.db.First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return &unit, nil
}

func (s *UnitService) Create(req *CreateUnitRequest) (*models.Unit, error) {
	unit := models.Unit{Label: req.Label}
	if err := s.db.Create(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (s *UnitService) Update(id string, req *UpdateUnitRequest) (*models.Unit, error) {
	unit, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		if err := s.db.Model(unit).Update("label", *req.Label).Error; err != nil {
			return nil, err
		}
	}
	return unit, nil
}

func (s *UnitService) Delete(id string) error {
	result := s.db.Delete(&models.Unit{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUnitNotFound
	}
	return nil
}
