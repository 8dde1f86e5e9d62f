package services

import (
	"errors"
	"time"

	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

// TaskService owns the plain CRUD side of tasks. Assignee changes never go
// through here; they are routed to TaskPolicyService by the handler.
type TaskService struct {
	db     *gorm.DB
	policy *TaskPolicyService
}

func NewTaskService(db *gorm.DB, policy *TaskPolicyService) *TaskService {
	return &TaskService{db: db, policy: policy}
}

type TaskListRequest struct {
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
	Status     string `form:"status" binding:"omitempty,oneof=todo in_progress done"`
	AssigneeID string `form:"assignee_id"`
}

type TaskListResponse struct {
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Items  []models.Task `json:"items"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest carries a partial update. AssigneeID is presence-aware:
// absent leaves the assignee alone, null unassigns, a value assigns.
type UpdateTaskRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *string        `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time     `json:"due_date"`
	AssigneeID  OptionalString `json:"assignee_id"`
}

func (s *TaskService) List(req *TaskListRequest) (*TaskListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 100
	}

	var tasks []models.Task
	var total int64

	query := s.db.Model(&models.Task{})
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.AssigneeID != "" {
		query = query.Where("assignee_id = ?", req.AssigneeID)
	}

	query.Count(&total)

	if err := query.Offset(req.Offset).Limit(req.Limit).
		Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return &TaskListResponse{
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
		Items:  tasks,
	}, nil
}

func (s *TaskService) GetByID(id string) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Create(req *CreateTaskRequest) (*models.Task, error) {
	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a partial update. The assignee field, when present, is
// handled first through the policy engine; remaining fields are written
// directly.
func (s *TaskService) Update(id string, req *UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.AssigneeID.Set {
		if req.AssigneeID.Value != nil {
			if task.AssigneeID == nil || *task.AssigneeID != *req.AssigneeID.Value {
				task, err = s.policy.AssignTask(id, *req.AssigneeID.Value)
			}
		} else if task.AssigneeID != nil {
			task, err = s.policy.UnassignTask(id)
		}
		if err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DueDate != nil {
		updates["due_date"] = req.DueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(task).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (s *TaskService) Delete(id string) error {
	result := s.db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
