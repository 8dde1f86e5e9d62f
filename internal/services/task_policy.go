package services

import (
	"errors"

	"github.com/thecooperator/backend/internal/models"
	"github.com/thecooperator/backend/internal/repository"
	"gorm.io/gorm"
)

// TaskPolicyService enforces the assignment rules for tasks: completed tasks
// cannot be (re)assigned, and one user may hold at most MaxActiveTasksPerUser
// tasks that are not done. It is the only writer of the assignee field; every
// other task field goes through the plain partial update in TaskService.
type TaskPolicyService struct {
	db        *gorm.DB
	tasks     *repository.TaskRepository
	maxActive int
}

func NewTaskPolicyService(db *gorm.DB, maxActive int) *TaskPolicyService {
	return &TaskPolicyService{
		db:        db,
		tasks:     repository.NewTaskRepository(db),
		maxActive: maxActive,
	}
}

// AssignTask assigns the task to the given user. The active-task count is
// checked and the assignee written inside one transaction, with row locks on
// the counted tasks, so two racing assignments cannot both slip under the
// limit. Assigning a task to its current assignee is a no-op.
func (s *TaskPolicyService) AssignTask(taskID, userID string) (*models.Task, error) {
	var result *models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.tasks.WithTx(tx)

		task, err := repo.GetTaskForUpdate(taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if task.Status == models.TaskStatusDone {
			return ErrTaskCompleted
		}

		if task.AssigneeID != nil && *task.AssigneeID == userID {
			result = task
			return nil
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		count, err := repo.LockActiveTasksForAssignee(userID)
		if err != nil {
			return err
		}
		if count >= int64(s.maxActive) {
			return ErrAssignmentLimitExceeded
		}

		if err := repo.UpdateTaskAssignee(task.ID, &userID); err != nil {
			return err
		}

		task.AssigneeID = &userID
		result = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UnassignTask clears the task's assignee. Unassigning a task that has no
// assignee is a no-op.
func (s *TaskPolicyService) UnassignTask(taskID string) (*models.Task, error) {
	var result *models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.tasks.WithTx(tx)

		task, err := repo.GetTaskForUpdate(taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if task.Status == models.TaskStatusDone {
			return ErrTaskCompleted
		}

		if task.AssigneeID == nil {
			result = task
			return nil
		}

		if err := repo.UpdateTaskAssignee(task.ID, nil); err != nil {
			return err
		}

		task.AssigneeID = nil
		result = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
