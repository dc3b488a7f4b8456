package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/p-stoney/discordbot-restapi/internal/dto"
	"github.com/p-stoney/discordbot-restapi/internal/service"
	"github.com/p-stoney/discordbot-restapi/pkg/response"
)

// SprintHandler Sprint 模块 HTTP 处理器
type SprintHandler struct {
	sprintSvc service.SprintService
}

// NewSprintHandler 创建 SprintHandler
func NewSprintHandler(sprintSvc service.SprintService) *SprintHandler {
	return &SprintHandler{sprintSvc: sprintSvc}
}

// ListSprints 获取 Sprint 列表
// GET /sprints
func (h *SprintHandler) ListSprints(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sprints, err := h.sprintSvc.FindAll(c.Request.Context(), req.GetLimit(), req.GetOffset())
	if err != nil {
		h.handleSprintError(c, err)
		return
	}

	response.OK(c, sprints)
}

// GetSprint 按 id 获取 Sprint
// GET /sprints/:id
func (h *SprintHandler) GetSprint(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	sprint, err := h.sprintSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.handleSprintError(c, err)
		return
	}

	response.OK(c, sprint)
}

// GetSprintsByCourse 按课程代码获取 Sprint 列表
// GET /sprints/course/:course
func (h *SprintHandler) GetSprintsByCourse(c *gin.Context) {
	course := c.Param("course")
	if len(course) != 2 {
		response.BadRequest(c, "course must be exactly 2 characters")
		return
	}

	sprints, err := h.sprintSvc.FindByCourse(c.Request.Context(), course)
	if err != nil {
		h.handleSprintError(c, err)
		return
	}

	response.OK(c, sprints)
}

// CreateSprint 创建 Sprint
// POST /sprints
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	var req dto.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sprint, err := h.sprintSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSprintError(c, err)
		return
	}

	response.Created(c, sprint)
}

// UpdateSprint 部分更新 Sprint
// PATCH /sprints/:id
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.sprintSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleSprintError(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteSprint 删除 Sprint
// DELETE /sprints/:id
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.sprintSvc.Remove(c.Request.Context(), id); err != nil {
		h.handleSprintError(c, err)
		return
	}

	response.NoContent(c)
}

// handleSprintError 统一处理 Sprint 模块业务错误
func (h *SprintHandler) handleSprintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSprintNotFound):
		response.NotFound(c, "Sprint not found")
	default:
		response.InternalError(c)
	}
}
