package service

import (
	"go.uber.org/zap"

	"github.com/p-stoney/discordbot-restapi/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	User     UserService
	Sprint   SprintService
	Template TemplateService
	Message  MessageService
	Congrats CongratsService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	gifs GifFetcher,
	sender ChannelSender,
	logger *zap.Logger,
) *Service {
	users := NewUserService(repo, logger)
	sprints := NewSprintService(repo, logger)
	templates := NewTemplateService(repo, logger)
	messages := NewMessageService(repo, logger)

	return &Service{
		User:     users,
		Sprint:   sprints,
		Template: templates,
		Message:  messages,
		Congrats: NewCongratsService(users, sprints, templates, messages, gifs, sender, logger),
	}
}
