package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thecooperator/backend/internal/services"
	"github.com/thecooperator/backend/pkg/response"
	"gorm.io/gorm"
)

type UnitHandler struct {
	unitService *services.UnitService
}

func NewUnitHandler(db *gorm.DB) *UnitHandler {
	return &UnitHandler{
		unitService: services.NewUnitService(db),
	}
}

func (h *UnitHandler) List(c *gin.Context) {
	var req services.UnitListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.unitService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, result)
}

func (h *UnitHandler) Get(c *gin.Context) {
	unit, err := h.unitService.GetByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, unit)
}

func (h *UnitHandler) Create(c *gin.Context) {
	var req services.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	unit, err := h.unitService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, unit)
}

func (h *UnitHandler) Update(c *gin.Context) {
	var req services.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	unit, err := h.unitService.Update(c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, unit)
}

func (h *UnitHandler) Delete(c *gin.Context) {
	if err := h.unitService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	response.NoContent(c)
}
