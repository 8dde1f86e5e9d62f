package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/pkg/response"
	"gorm.io/gorm"
)

type CommitteeHandler struct {
	committeeService *services.CommitteeService
}

func NewCommitteeHandler(db *gorm.DB) *CommitteeHandler {
	return &CommitteeHandler{
		committeeService: services.NewCommitteeService(db),
	}
}

func (h *CommitteeHandler) List(c *gin.Context) {
	var req services.CommitteeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.committeeService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, result)
}

func (h *CommitteeHandler) Get(c *gin.Context) {
	committee, err := h.committeeService.GetByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, committee)
}

func (h *CommitteeHandler) Create(c *gin.Context) {
	var req services.CreateCommitteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	committee, err := h.committeeService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, committee)
}

func (h *CommitteeHandler) Update(c *gin.Context) {
	var req services.UpdateCommitteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	committee, err := h.committeeService.Update(c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, committee)
}

func (h *CommitteeHandler) Delete(c *gin.Context) {
	if err := h.committeeService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	response.NoContent(c)
}

// AddMemberRole puts a member on the committee
// POST /api/v1/committees/:id/members
func (h *CommitteeHandler) AddMemberRole(c *gin.Context) {
	var req services.AddMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	role, err := h.committeeService.AddMemberRole(c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, role)
}

// RemoveMemberRole takes a member role off the committee
// DELETE /api/v1/committees/:id/members/:roleId
func (h *CommitteeHandler) RemoveMemberRole(c *gin.Context) {
	if err := h.committeeService.RemoveMemberRole(c.Param("id"), c.Param("roleId")); err != nil {
		handleServiceError(c, err)
		return
	}

	response.NoContent(c)
}
