package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/p-stoney/discordbot-restapi/internal/dto"
	"github.com/p-stoney/discordbot-restapi/internal/model"
	"github.com/p-stoney/discordbot-restapi/internal/repository"
)

// ── 学员模块业务错误 ──

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserService 学员业务接口
type UserService interface {
	FindAll(ctx context.Context, limit, offset int) ([]dto.UserResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	FindByName(ctx context.Context, username string) (*dto.UserResponse, error)
	FindByDiscordID(ctx context.Context, discordID string) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Remove(ctx context.Context, id int64) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── FindAll ──────────────────────

func (s *userService) FindAll(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error("查询学员列表失败", zap.Error(err))
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserResponse(&users[i]))
	}

	return result, nil
}

// ────────────────────── FindByID ──────────────────────

func (s *userService) FindByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询学员失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

// ────────────────────── FindByName ──────────────────────

func (s *userService) FindByName(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.repo.User.FindByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("按用户名查询学员失败", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

// ────────────────────── FindByDiscordID ──────────────────────

func (s *userService) FindByDiscordID(ctx context.Context, discordID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.FindByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("按 Discord ID 查询学员失败", zap.String("discord_id", discordID), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &model.User{
		Username:  req.Username,
		DiscordID: req.DiscordID,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// 唯一约束冲突等存储层错误原样上抛
		s.logger.Error("创建学员失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

// ────────────────────── Update ──────────────────────

func (s *userService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.DiscordID != nil {
		fields["discord_id"] = *req.DiscordID
	}

	user, err := s.repo.User.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("更新学员失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

// ────────────────────── Remove ──────────────────────

// Remove 删除学员；目标不存在时静默成功
func (s *userService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.User.Remove(ctx, id); err != nil {
		s.logger.Error("删除学员失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		DiscordID: user.DiscordID,
	}
}
