package repository

import (
	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskRepository is pure data access for tasks. Policy checks live in the
// services layer.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

func (r *TaskRepository) GetTask(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTaskForUpdate fetches a task holding a row lock for the remainder of the
// surrounding transaction. On sqlite the lock clause is a no-op; writes there
// are serialized by the engine itself.
func (r *TaskRepository) GetTaskForUpdate(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// CountActiveTasksForAssignee counts tasks assigned to userID whose status is
// not done.
func (r *TaskRepository) CountActiveTasksForAssignee(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("assignee_id = ? AND status <> ?", userID, models.TaskStatusDone).
		Count(&count).Error
	return count, err
}

// LockActiveTasksForAssignee takes row locks on the assignee's active tasks
// so a concurrent assignment cannot slip past the limit check, then returns
// their count.
func (r *TaskRepository) LockActiveTasksForAssignee(userID string) (int64, error) {
	var ids []string
	err := r.db.Model(&models.Task{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("assignee_id = ? AND status <> ?", userID, models.TaskStatusDone).
		Pluck("id", &ids).Error
	return int64(len(ids)), err
}

// UpdateTaskAssignee sets or clears (userID == nil) the assignee. No other
// field is touched.
func (r *TaskRepository) UpdateTaskAssignee(id string, userID *string) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", id).
		Update("assignee_id", userID).Error
}

func (r *TaskRepository) CountCompletedTasksForUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("assignee_id = ? AND status = ?", userID, models.TaskStatusDone).
		Count(&count).Error
	return count, err
}
