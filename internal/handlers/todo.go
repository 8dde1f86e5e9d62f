package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/pkg/response"
	"gorm.io/gorm"
)

type TodoHandler struct {
	todoService *services.TodoService
}

func NewTodoHandler(db *gorm.DB) *TodoHandler {
	return &TodoHandler{
		todoService: services.NewTodoService(db),
	}
}

func (h *TodoHandler) List(c *gin.Context) {
	var req services.TodoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	todos, err := h.todoService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, todos)
}

func (h *TodoHandler) Get(c *gin.Context) {
	id, err := parseTodoID(c)
	if err != nil {
		response.BadRequest(c, "invalid todo id")
		return
	}

	todo, err := h.todoService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, todo)
}

func (h *TodoHandler) Create(c *gin.Context) {
	var req services.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	todo, err := h.todoService.Create(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Created(c, todo)
}

func (h *TodoHandler) Update(c *gin.Context) {
	id, err := parseTodoID(c)
	if err != nil {
		response.BadRequest(c, "invalid todo id")
		return
	}

	var req services.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	todo, err := h.todoService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, todo)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id, err := parseTodoID(c)
	if err != nil {
		response.BadRequest(c, "invalid todo id")
		return
	}

	if err := h.todoService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.NoContent(c)
}

func parseTodoID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
