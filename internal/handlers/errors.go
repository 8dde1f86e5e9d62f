package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/pkg/response"
)

// handleServiceError maps service-layer sentinel errors onto HTTP responses.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrUnitNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrCommitteeNotFound),
		errors.Is(err, services.ErrRoleNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrProposalNotFound),
		errors.Is(err, services.ErrTodoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskCompleted),
		errors.Is(err, services.ErrAssignmentLimitExceeded):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateVote),
		errors.Is(err, services.ErrEmailTaken):
		response.Conflict(c, err.Error())
	default:
		response.ServerError(c, err.Error())
	}
}
