package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/p-stoney/discordbot-restapi/internal/dto"
	"github.com/p-stoney/discordbot-restapi/internal/service"
	"github.com/p-stoney/discordbot-restapi/pkg/response"
)

// TemplateHandler 消息模板模块 HTTP 处理器
type TemplateHandler struct {
	templateSvc service.TemplateService
}

// NewTemplateHandler 创建 TemplateHandler
func NewTemplateHandler(templateSvc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// ListTemplates 获取模板列表
// GET /templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	templates, err := h.templateSvc.FindAll(c.Request.Context(), req.GetLimit(), req.GetOffset())
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, templates)
}

// GetTemplate 按 id 获取模板
// GET /templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	template, err := h.templateSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.OK(c, template)
}

// CreateTemplate 创建模板
// POST /templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	template, err := h.templateSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.Created(c, template)
}

// UpdateTemplate 部分更新模板
// PATCH /templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.templateSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteTemplate 删除模板
// DELETE /templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.templateSvc.Remove(c.Request.Context(), id); err != nil {
		h.handleTemplateError(c, err)
		return
	}

	response.NoContent(c)
}

// handleTemplateError 统一处理模板模块业务错误
func (h *TemplateHandler) handleTemplateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		response.NotFound(c, "Template not found")
	default:
		response.InternalError(c)
	}
}
