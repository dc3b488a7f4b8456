package handler

import (
	"github.com/p-stoney/discordbot-restapi/config"
	"github.com/p-stoney/discordbot-restapi/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	User     *UserHandler
	Sprint   *SprintHandler
	Template *TemplateHandler
	Message  *MessageHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		User:     NewUserHandler(svc.User),
		Sprint:   NewSprintHandler(svc.Sprint),
		Template: NewTemplateHandler(svc.Template),
		Message:  NewMessageHandler(cfg, svc.Message, svc.Congrats),
	}
}
