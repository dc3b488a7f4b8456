package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/p-stoney/discordbot-restapi/internal/dto"
)

// GifFetcher 外部图片搜索客户端接口
type GifFetcher interface {
	FetchRandomGif(ctx context.Context, apiKey string) (string, error)
}

// ChannelSender 聊天频道投递接口
// 依次发送多条文本；频道无法解析或不可发文时返回错误
type ChannelSender interface {
	SendToChannel(channelID string, contents ...string) error
}

// CongratsService 祝贺消息编排接口
type CongratsService interface {
	SendCongratulatoryMessage(ctx context.Context, username, code, channelID, apiKey string)
}

type congratsService struct {
	users     UserService
	sprints   SprintService
	templates TemplateService
	messages  MessageService
	gifs      GifFetcher
	sender    ChannelSender
	logger    *zap.Logger
}

// NewCongratsService 创建 CongratsService 实例
// sender 为 nil 表示未配置聊天机器人，编排将直接中止
func NewCongratsService(
	users UserService,
	sprints SprintService,
	templates TemplateService,
	messages MessageService,
	gifs GifFetcher,
	sender ChannelSender,
	logger *zap.Logger,
) CongratsService {
	return &congratsService{
		users:     users,
		sprints:   sprints,
		templates: templates,
		messages:  messages,
		gifs:      gifs,
		sender:    sender,
		logger:    logger,
	}
}

// SendCongratulatoryMessage 祝贺消息发送编排，单趟执行、无重试
// 流程中任何失败都只记录日志并中止，不向调用方上抛
func (s *congratsService) SendCongratulatoryMessage(ctx context.Context, username, code, channelID, apiKey string) {
	if s.sender == nil {
		s.logger.Warn("聊天客户端未配置，跳过祝贺消息发送",
			zap.String("username", username),
			zap.String("code", code),
		)
		return
	}

	// 1. 解析学员、Sprint 与随机模板，三者相互独立
	user, err := s.users.FindByName(ctx, username)
	if err != nil {
		s.logger.Error("祝贺消息中止：学员解析失败", zap.String("username", username), zap.Error(err))
		return
	}

	sprint, err := s.sprints.FindByCode(ctx, code)
	if err != nil {
		s.logger.Error("祝贺消息中止：Sprint 解析失败", zap.String("code", code), zap.Error(err))
		return
	}

	template, err := s.templates.FindRandom(ctx)
	if err != nil {
		s.logger.Error("祝贺消息中止：模板抽取失败", zap.Error(err))
		return
	}

	// 2. 获取庆祝图片
	gifURL, err := s.gifs.FetchRandomGif(ctx, apiKey)
	if err != nil {
		s.logger.Error("祝贺消息中止：获取 GIF 失败", zap.Error(err))
		return
	}

	// 3. 渲染文本：仅替换各占位符的首次出现
	content := renderTemplate(template.Template, user.DiscordID, sprint.Title)

	// 4. 依次投递两条消息：文本与 GIF 链接
	// 频道无法解析或不可发文时整体中止，不落库
	if err := s.sender.SendToChannel(channelID, content, gifURL); err != nil {
		s.logger.Error("祝贺消息中止：频道投递失败",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
		return
	}

	// 5. 落库记录发送结果；失败只记录日志，已发出的消息不回滚
	_, err = s.messages.Create(ctx, &dto.CreateMessageRequest{
		UserID:   user.ID,
		SprintID: sprint.ID,
		Status:   200,
		GifURL:   gifURL,
		Message:  content,
	})
	if err != nil {
		s.logger.Error("祝贺消息已发送但落库失败",
			zap.Int64("user_id", user.ID),
			zap.Int64("sprint_id", sprint.ID),
			zap.Error(err),
		)
	}
}

// renderTemplate 将 {user} 替换为 Discord 提及格式，{sprint} 替换为 Sprint 标题
func renderTemplate(template, discordID, sprintTitle string) string {
	content := strings.Replace(template, "{user}", "<@"+discordID+">", 1)
	return strings.Replace(content, "{sprint}", sprintTitle, 1)
}
