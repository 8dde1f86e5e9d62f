package services

import (
	"errors"
	"testing"

	"github.com/thecooperator/backend/internal/models"
)

const testMaxActiveTasks = 3

func TestAssignTask_Success(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)

	user := createTestUser(t, db, "alice@example.com")
	task := createTestTask(t, db, "Fix the lobby light", models.TaskStatusTodo, nil)

	result, err := policy.AssignTask(task.ID, user.ID)
	if err != nil {
		t.Fatalf("AssignTask failed: %v", err)
	}
	if result.AssigneeID == nil || *result.AssigneeID != user.ID {
		t.Error("returned task should carry the new assignee")
	}

	var stored models.Task
	if err := db.First(&stored, "id = ?", task.ID).Error; err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if stored.AssigneeID == nil || *stored.AssigneeID != user.ID {
		t.Error("assignee should be persisted")
	}
}

func TestAssignTask_TaskNotFound(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	user := createTestUser(t, db, "alice@example.com")

	_, err := policy.AssignTask("no-such-task", user.ID)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestAssignTask_UserNotFound(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	task := createTestTask(t, db, "Sweep the stairwell", models.TaskStatusTodo, nil)

	_, err := policy.AssignTask(task.ID, "no-such-user")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAssignTask_CompletedTask(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	user := createTestUser(t, db, "alice@example.com")
	task := createTestTask(t, db, "Paint the fence", models.TaskStatusDone, nil)

	_, err := policy.AssignTask(task.ID, user.ID)
	if !errors.Is(err, ErrTaskCompleted) {
		t.Errorf("expected ErrTaskCompleted, got %v", err)
	}
}

func TestAssignTask_Reassign(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	task := createTestTask(t, db, "Water the garden", models.TaskStatusInProgress, &alice.ID)

	result, err := policy.AssignTask(task.ID, bob.ID)
	if err != nil {
		t.Fatalf("reassigning to another user should succeed: %v", err)
	}
	if result.AssigneeID == nil || *result.AssigneeID != bob.ID {
		t.Error("task should now be assigned to the second user")
	}
}

func TestAssignTask_SameAssigneeIsNoOp(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	user := createTestUser(t, db, "alice@example.com")

	// The user is already at the limit; re-assigning a task they hold must
	// still succeed because it changes nothing.
	var last *models.Task
	for i := 0; i < testMaxActiveTasks; i++ {
		last = createTestTask(t, db, "Chore", models.TaskStatusTodo, &user.ID)
	}

	result, err := policy.AssignTask(last.ID, user.ID)
	if err != nil {
		t.Fatalf("assigning a task to its current assignee should be a no-op: %v", err)
	}
	if result.AssigneeID == nil || *result.AssigneeID != user.ID {
		t.Error("assignee should be unchanged")
	}
}

func TestAssignTask_LimitExceeded(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	user := createTestUser(t, db, "alice@example.com")

	for i := 0; i < testMaxActiveTasks; i++ {
		createTestTask(t, db, "Chore", models.TaskStatusInProgress, &user.ID)
	}
	extra := createTestTask(t, db, "One chore too many", models.TaskStatusTodo, nil)

	_, err := policy.AssignTask(extra.ID, user.ID)
	if !errors.Is(err, ErrAssignmentLimitExceeded) {
		t.Errorf("expected ErrAssignmentLimitExceeded, got %v", err)
	}

	var stored models.Task
	if err := db.First(&stored, "id = ?", extra.ID).Error; err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if stored.AssigneeID != nil {
		t.Error("rejected assignment must not be persisted")
	}
}

func TestAssignTask_DoneTasksDoNotCountTowardsLimit(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	user := createTestUser(t, db, "alice@example.com")

	// A pile of finished work should not block new assignments.
	for i := 0; i < testMaxActiveTasks+2; i++ {
		createTestTask(t, db, "Old chore", models.TaskStatusDone, &user.ID)
	}
	task := createTestTask(t, db, "New chore", models.TaskStatusTodo, nil)

	if _, err := policy.AssignTask(task.ID, user.ID); err != nil {
		t.Errorf("completed tasks must not count against the limit: %v", err)
	}
}

func TestAssignTask_LimitBoundary(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	user := createTestUser(t, db, "alice@example.com")

	for i := 0; i < testMaxActiveTasks-1; i++ {
		createTestTask(t, db, "Chore", models.TaskStatusTodo, &user.ID)
	}
	task := createTestTask(t, db, "Last allowed chore", models.TaskStatusTodo, nil)

	// Count is maxActive-1, so this assignment reaches exactly the limit.
	if _, err := policy.AssignTask(task.ID, user.ID); err != nil {
		t.Errorf("assignment up to the limit should succeed: %v", err)
	}
}

func TestUnassignTask_Success(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	user := createTestUser(t, db, "alice@example.com")
	task := createTestTask(t, db, "Shovel snow", models.TaskStatusInProgress, &user.ID)

	result, err := policy.UnassignTask(task.ID)
	if err != nil {
		t.Fatalf("UnassignTask failed: %v", err)
	}
	if result.AssigneeID != nil {
		t.Error("assignee should be cleared")
	}

	var stored models.Task
	if err := db.First(&stored, "id = ?", task.ID).Error; err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if stored.AssigneeID != nil {
		t.Error("cleared assignee should be persisted")
	}
}

func TestUnassignTask_NoAssigneeIsNoOp(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	task := createTestTask(t, db, "Unowned chore", models.TaskStatusTodo, nil)

	result, err := policy.UnassignTask(task.ID)
	if err != nil {
		t.Fatalf("unassigning an unassigned task should be a no-op: %v", err)
	}
	if result.AssigneeID != nil {
		t.Error("assignee should remain nil")
	}
}

func TestUnassignTask_TaskNotFound(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)

	_, err := policy.UnassignTask("no-such-task")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUnassignTask_CompletedTask(t *testing.T) {
	db := openTestDB(t)
	policy := NewTaskPolicyService(db, testMaxActiveTasks)
	user := createTestUser(t, db, "alice@example.com")
	task := createTestTask(t, db, "Archived chore", models.TaskStatusDone, &user.ID)

	_, err := policy.UnassignTask(task.ID)
	if !errors.Is(err, ErrTaskCompleted) {
		t.Errorf("expected ErrTaskCompleted, got %v", err)
	}
}
