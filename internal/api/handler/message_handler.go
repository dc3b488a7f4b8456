package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/p-stoney/discordbot-restapi/config"
	"github.com/p-stoney/discordbot-restapi/internal/dto"
	"github.com/p-stoney/discordbot-restapi/internal/service"
	"github.com/p-stoney/discordbot-restapi/pkg/response"
)

// MessageHandler 祝贺消息模块 HTTP 处理器
type MessageHandler struct {
	cfg         *config.Config
	messageSvc  service.MessageService
	congratsSvc service.CongratsService
}

// NewMessageHandler 创建 MessageHandler
func NewMessageHandler(cfg *config.Config, messageSvc service.MessageService, congratsSvc service.CongratsService) *MessageHandler {
	return &MessageHandler{cfg: cfg, messageSvc: messageSvc, congratsSvc: congratsSvc}
}

// ListMessages 获取消息列表
// GET /messages
// username 与 sprint 查询参数为二选一的过滤条件，优先于普通分页
func (h *MessageHandler) ListMessages(c *gin.Context) {
	var req dto.ListMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Username != "" {
		messages, err := h.messageSvc.FindByUsername(c.Request.Context(), req.Username)
		if err != nil {
			h.handleMessageError(c, err)
			return
		}
		response.OK(c, messages)
		return
	}

	if req.Sprint != "" {
		messages, err := h.messageSvc.FindBySprintCode(c.Request.Context(), req.Sprint)
		if err != nil {
			h.handleMessageError(c, err)
			return
		}
		response.OK(c, messages)
		return
	}

	messages, err := h.messageSvc.FindAll(c.Request.Context(), req.GetLimit(), req.GetOffset())
	if err != nil {
		h.handleMessageError(c, err)
		return
	}

	response.OK(c, messages)
}

// GetMessage 按 id 获取消息
// GET /messages/:id
func (h *MessageHandler) GetMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	message, err := h.messageSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.handleMessageError(c, err)
		return
	}

	response.OK(c, message)
}

// CreateMessage 创建消息记录
// POST /messages
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.messageSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleMessageError(c, err)
		return
	}

	response.Created(c, message)
}

// UpdateMessage 部分更新消息记录
// PATCH /messages/:id
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.messageSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleMessageError(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteMessage 删除消息记录
// DELETE /messages/:id
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.messageSvc.Remove(c.Request.Context(), id); err != nil {
		h.handleMessageError(c, err)
		return
	}

	response.NoContent(c)
}

// SendMessage 触发祝贺消息发送编排
// POST /messages/send
// 编排内部任何失败都只记录日志；无论投递结果如何，本接口固定返回 200，
// 调用方依赖这一弱契约，不能改为按结果返回错误
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	h.congratsSvc.SendCongratulatoryMessage(
		c.Request.Context(),
		req.Username,
		req.Code,
		h.cfg.Discord.ChannelID,
		h.cfg.Giphy.APIKey,
	)

	response.OK(c, gin.H{"message": "Congratulatory message sent successfully."})
}

// handleMessageError 统一处理消息模块业务错误
// 复合查询会透传学员/Sprint 的未找到错误
func (h *MessageHandler) handleMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMessageNotFound):
		response.NotFound(c, "Message not found")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, service.ErrSprintNotFound):
		response.NotFound(c, "Sprint not found")
	default:
		response.InternalError(c)
	}
}
