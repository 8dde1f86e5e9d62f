package services

import (
	"errors"
	"time"

	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

type MemberListRequest struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Name   string `form:"name"`
	UnitID string `form:"unit_id"`
}

type MemberListResponse struct {
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Items  []models.Member `json:"items"`
}

type CreateMemberRequest struct {
	FirstName      string     `json:"first_name" binding:"required"`
	LastName       string     `json:"last_name" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	DOB            *time.Time `json:"dob"`
	PhoneNumber    string     `json:"phone_number"`
	Occupation     string     `json:"occupation"`
	Sex            string     `json:"sex" binding:"omitempty,oneof=male female other prefer_not_to_say"`
	Skills         string     `json:"skills"`
	EducationLevel string     `json:"education_level"`
	MemberType     string     `json:"member_type" binding:"required,oneof=primary secondary"`
	UnitID         *string    `json:"unit_id"`
}

type UpdateMemberRequest struct {
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	Email          *string        `json:"email" binding:"omitempty,email"`
	DOB            *time.Time     `json:"dob"`
	PhoneNumber    *string        `json:"phone_number"`
	Occupation     *string        `json:"occupation"`
	Sex            *string        `json:"sex" binding:"omitempty,oneof=male female other prefer_not_to_say"`
	Skills         *string        `json:"skills"`
	EducationLevel *string        `json:"education_level"`
	MemberType     *string        `json:"member_type" binding:"omitempty,oneof=primary secondary"`
	UnitID         OptionalString `json:"unit_id"` // null moves the member out of their unit
}

func (s *MemberService) List(req *MemberListRequest) (*MemberListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 100
	}

	var members []models.Member
	var total int64

	query := s.db.Model(&models.Member{})
	if req.Name != "" {
		pattern := "%" + req.Name + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}
	if req.UnitID != "" {
		query = query.Where("unit_id = ?", req.UnitID)
	}

	query.Count(&total)

	if err := query.Preload("Unit").Offset(req.Offset).Limit(req.Limit).
		Order("last_name, first_name").Find(&members).Error; err != nil {
		return nil, err
	}

	return &MemberListResponse{Total: total, Limit: req.Limit, Offset: req.Offset, Items: members}, nil
}

func (s *MemberService) GetByID(id string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Preload("Unit").First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (s *MemberService) Create(req *CreateMemberRequest) (*models.Member, error) {
	var count int64
	s.db.Model(&models.Member{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return nil, ErrEmailTaken
	}

	if req.UnitID != nil {
		if err := s.unitExists(*req.UnitID); err != nil {
			return nil, err
		}
	}

	member := models.Member{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		DOB:            req.DOB,
		PhoneNumber:    req.PhoneNumber,
		Occupation:     req.Occupation,
		Sex:            req.Sex,
		Skills:         req.Skills,
		EducationLevel: req.EducationLevel,
		MemberType:     req.MemberType,
		UnitID:         req.UnitID,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *MemberService) Update(id string, req *UpdateMemberRequest) (*models.Member, error) {
	member, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.DOB != nil {
		updates["dob"] = req.DOB
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Occupation != nil {
		updates["occupation"] = *req.Occupation
	}
	if req.Sex != nil {
		updates["sex"] = *req.Sex
	}
	if req.Skills != nil {
		updates["skills"] = *req.Skills
	}
	if req.EducationLevel != nil {
		updates["education_level"] = *req.EducationLevel
	}
	if req.MemberType != nil {
		updates["member_type"] = *req.MemberType
	}
	if req.UnitID.Set {
		if req.UnitID.Value != nil {
			if err := s.unitExists(*req.UnitID.Value); err != nil {
				return nil, err
			}
		}
		updates["unit_id"] = req.UnitID.Value
	}

	if len(updates) > 0 {
		if err := s.db.Model(member).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return member, nil
}

func (s *MemberService) Delete(id string) error {
	result := s.db.Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (s *MemberService) unitExists(unitID string) error {
	var count int64
	s.db.Model(&models.Unit{}).Where("id = ?", unitID).Count(&count)
	if count == 0 {
		return ErrUnitNotFound
	}
	return nil
}
