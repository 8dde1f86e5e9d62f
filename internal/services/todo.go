package services

import (
	"errors"

	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

// TodoService replaces the old in-process demo map with persisted records.
type TodoService struct {
	db *gorm.DB
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{db: db}
}

type TodoListRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

type CreateTodoRequest struct {
	Title     string `json:"title" binding:"required"`
	Completed bool   `json:"completed"`
}

type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (s *TodoService) List(req *TodoListRequest) ([]models.Todo, error) {
	if req.Limit == 0 {
		req.Limit = 100
	}

	var todos []models.Todo
	if err := s.db.Offset(req.Offset).Limit(req.Limit).
		Order("id").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *TodoService) GetByID(id uint) (*models.Todo, error) {
	var todo models.Todo
	if err := s.db.First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (s *TodoService) Create(req *CreateTodoRequest) (*models.Todo, error) {
	todo := models.Todo{Title: req.Title, Completed: req.Completed}
	if err := s.db.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *TodoService) Update(id uint, req *UpdateTodoRequest) (*models.Todo, error) {
	todo, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}

	if len(updates) > 0 {
		if err := s.db.Model(todo).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return todo, nil
}

func (s *TodoService) Delete(id uint) error {
	result := s.db.Delete(&models.Todo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
