package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/p-stoney/discordbot-restapi/internal/dto"
	"github.com/p-stoney/discordbot-restapi/internal/service"
	"github.com/p-stoney/discordbot-restapi/pkg/response"
)

// UserHandler 学员模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers 获取学员列表
// GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	users, err := h.userSvc.FindAll(c.Request.Context(), req.GetLimit(), req.GetOffset())
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, users)
}

// GetUser 按 id 获取学员
// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// GetUserByName 按用户名获取学员
// GET /users/username/:username
func (h *UserHandler) GetUserByName(c *gin.Context) {
	username := c.Param("username")
	if len(username) < 5 || len(username) > 20 {
		response.BadRequest(c, "username must be between 5 and 20 characters")
		return
	}

	user, err := h.userSvc.FindByName(c.Request.Context(), username)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// GetUserByDiscordID 按 Discord ID 获取学员
// GET /users/discordId/:id
func (h *UserHandler) GetUserByDiscordID(c *gin.Context) {
	discordID := c.Param("id")
	if len(discordID) != 18 {
		response.BadRequest(c, "discordId must be exactly 18 characters")
		return
	}

	user, err := h.userSvc.FindByDiscordID(c.Request.Context(), discordID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// CreateUser 创建学员
// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.Created(c, user)
}

// UpdateUser 部分更新学员
// PATCH /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.userSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteUser 删除学员
// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userSvc.Remove(c.Request.Context(), id); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.NoContent(c)
}

// handleUserError 统一处理学员模块业务错误
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found")
	default:
		response.InternalError(c)
	}
}
