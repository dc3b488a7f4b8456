package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/p-stoney/discordbot-restapi/internal/dto"
	"github.com/p-stoney/discordbot-restapi/internal/model"
	"github.com/p-stoney/discordbot-restapi/internal/repository"
)

// ── 祝贺消息模块业务错误 ──

var (
	ErrMessageNotFound = errors.New("message not found")
)

// MessageService 祝贺消息记录业务接口
type MessageService interface {
	FindAll(ctx context.Context, limit, offset int) ([]dto.MessageResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.MessageResponse, error)
	FindByUsername(ctx context.Context, username string) ([]dto.MessageResponse, error)
	FindBySprintCode(ctx context.Context, code string) ([]dto.MessageResponse, error)
	Create(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMessageRequest) (*dto.MessageResponse, error)
	Remove(ctx context.Context, id int64) error
}

type messageService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMessageService 创建 MessageService 实例
func NewMessageService(repo *repository.Repository, logger *zap.Logger) MessageService {
	return &messageService{repo: repo, logger: logger}
}

// ────────────────────── FindAll ──────────────────────

func (s *messageService) FindAll(ctx context.Context, limit, offset int) ([]dto.MessageResponse, error) {
	messages, err := s.repo.Message.FindAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error("查询消息列表失败", zap.Error(err))
		return nil, err
	}
	if len(messages) == 0 {
		return nil, ErrMessageNotFound
	}

	return toMessageResponses(messages), nil
}

// ────────────────────── FindByID ──────────────────────

func (s *messageService) FindByID(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	message, err := s.repo.Message.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		s.logger.Error("查询消息失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toMessageResponse(message), nil
}

// ────────────────────── FindByUsername ──────────────────────

// FindByUsername 复合查询：先按用户名解析学员，再按其 ID 查消息
func (s *messageService) FindByUsername(ctx context.Context, username string) ([]dto.MessageResponse, error) {
	user, err := s.repo.User.FindByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("按用户名查询学员失败", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	messages, err := s.repo.Message.FindByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("按学员查询消息失败", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	if len(messages) == 0 {
		return nil, ErrMessageNotFound
	}

	return toMessageResponses(messages), nil
}

// ────────────────────── FindBySprintCode ──────────────────────

// FindBySprintCode 复合查询：先按编号解析 Sprint，再按其 ID 查消息
func (s *messageService) FindBySprintCode(ctx context.Context, code string) ([]dto.MessageResponse, error) {
	sprint, err := s.repo.Sprint.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSprintNotFound
		}
		s.logger.Error("按编号查询 Sprint 失败", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	messages, err := s.repo.Message.FindBySprintID(ctx, sprint.ID)
	if err != nil {
		s.logger.Error("按 Sprint 查询消息失败", zap.Int64("sprint_id", sprint.ID), zap.Error(err))
		return nil, err
	}
	if len(messages) == 0 {
		return nil, ErrMessageNotFound
	}

	return toMessageResponses(messages), nil
}

// ────────────────────── Create ──────────────────────

func (s *messageService) Create(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	message := &model.Message{
		UserID:   req.UserID,
		SprintID: req.SprintID,
		Status:   req.Status,
		GifURL:   req.GifURL,
		Message:  req.Message,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		// 外键约束冲突等存储层错误原样上抛
		s.logger.Error("创建消息记录失败", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	return toMessageResponse(message), nil
}

// ────────────────────── Update ──────────────────────

func (s *messageService) Update(ctx context.Context, id int64, req *dto.UpdateMessageRequest) (*dto.MessageResponse, error) {
	fields := map[string]interface{}{}
	if req.UserID != nil {
		fields["user_id"] = *req.UserID
	}
	if req.SprintID != nil {
		fields["sprint_id"] = *req.SprintID
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.GifURL != nil {
		fields["gif_url"] = *req.GifURL
	}
	if req.Message != nil {
		fields["message"] = *req.Message
	}

	message, err := s.repo.Message.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		s.logger.Error("更新消息记录失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toMessageResponse(message), nil
}

// ────────────────────── Remove ──────────────────────

// Remove 删除消息记录；目标不存在时静默成功
func (s *messageService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Message.Remove(ctx, id); err != nil {
		s.logger.Error("删除消息记录失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toMessageResponse(message *model.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:        message.ID,
		UserID:    message.UserID,
		SprintID:  message.SprintID,
		Timestamp: message.Timestamp.UTC().Format(time.RFC3339),
		Status:    message.Status,
		GifURL:    message.GifURL,
		Message:   message.Message,
	}
}

func toMessageResponses(messages []model.Message) []dto.MessageResponse {
	result := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		result = append(result, *toMessageResponse(&messages[i]))
	}
	return result
}
