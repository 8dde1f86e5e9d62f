package services

import "errors"

// Entity lookup failures
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUnitNotFound      = errors.New("unit not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrCommitteeNotFound = errors.New("committee not found")
	ErrRoleNotFound      = errors.New("committee role not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrTodoNotFound      = errors.New("todo not found")
)

// Business-rule failures
var (
	// ErrTaskCompleted: (re)assigning or unassigning a done task is meaningless;
	// the caller must change the task status first.
	ErrTaskCompleted = errors.New("cannot change assignment of a completed task")
	// ErrAssignmentLimitExceeded: the candidate assignee already carries the
	// maximum number of active tasks.
	ErrAssignmentLimitExceeded = errors.New("assignee has reached the active task limit")
	ErrDuplicateVote           = errors.New("user has already voted on this proposal")
	ErrEmailTaken              = errors.New("email already registered")
)
