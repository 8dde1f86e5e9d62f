package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/config"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/pkg/response"
	"gorm.io/gorm"
)

type TaskHandler struct {
	taskService *services.TaskService
	policy      *services.TaskPolicyService
}

func NewTaskHandler(db *gorm.DB, policyCfg *config.PolicyConfig) *TaskHandler {
	policy := services.NewTaskPolicyService(db, policyCfg.MaxActiveTasksPerUser)
	return &TaskHandler{
		taskService: services.NewTaskService(db, policy),
		policy:      policy,
	}
}

type assignRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *TaskHandler) List(c *gin.Context) {
	var req services.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.taskService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, result)
}

func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.taskService.GetByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, task)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req services.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Update(c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	response.NoContent(c)
}

// Assign sets the task's assignee subject to the active-task limit
// POST /api/v1/tasks/:id/assign
func (h *TaskHandler) Assign(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.policy.AssignTask(c.Param("id"), req.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, task)
}

// Unassign clears the task's assignee
// POST /api/v1/tasks/:id/unassign
func (h *TaskHandler) Unassign(c *gin.Context) {
	task, err := h.policy.UnassignTask(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, task)
}
