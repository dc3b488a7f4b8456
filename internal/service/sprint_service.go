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

// ── Sprint 模块业务错误 ──

var (
	ErrSprintNotFound = errors.New("sprint not found")
)

// SprintService Sprint 业务接口
type SprintService interface {
	FindAll(ctx context.Context, limit, offset int) ([]dto.SprintResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.SprintResponse, error)
	FindByCode(ctx context.Context, code string) (*dto.SprintResponse, error)
	FindByCourse(ctx context.Context, course string) ([]dto.SprintResponse, error)
	Create(ctx context.Context, req *dto.CreateSprintRequest) (*dto.SprintResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSprintRequest) (*dto.SprintResponse, error)
	Remove(ctx context.Context, id int64) error
}

type sprintService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSprintService 创建 SprintService 实例
func NewSprintService(repo *repository.Repository, logger *zap.Logger) SprintService {
	return &sprintService{repo: repo, logger: logger}
}

// ────────────────────── FindAll ──────────────────────

func (s *sprintService) FindAll(ctx context.Context, limit, offset int) ([]dto.SprintResponse, error) {
	sprints, err := s.repo.Sprint.FindAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error("查询 Sprint 列表失败", zap.Error(err))
		return nil, err
	}
	if len(sprints) == 0 {
		return nil, ErrSprintNotFound
	}

	return toSprintResponses(sprints), nil
}

// ────────────────────── FindByID ──────────────────────

func (s *sprintService) FindByID(ctx context.Context, id int64) (*dto.SprintResponse, error) {
	sprint, err := s.repo.Sprint.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSprintNotFound
		}
		s.logger.Error("查询 Sprint 失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toSprintResponse(sprint), nil
}

// ────────────────────── FindByCode ──────────────────────

func (s *sprintService) FindByCode(ctx context.Context, code string) (*dto.SprintResponse, error) {
	sprint, err := s.repo.Sprint.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSprintNotFound
		}
		s.logger.Error("按编号查询 Sprint 失败", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	return toSprintResponse(sprint), nil
}

// ────────────────────── FindByCourse ──────────────────────

func (s *sprintService) FindByCourse(ctx context.Context, course string) ([]dto.SprintResponse, error) {
	sprints, err := s.repo.Sprint.FindByCourse(ctx, course)
	if err != nil {
		s.logger.Error("按课程查询 Sprint 失败", zap.String("course", course), zap.Error(err))
		return nil, err
	}
	if len(sprints) == 0 {
		return nil, ErrSprintNotFound
	}

	return toSprintResponses(sprints), nil
}

// ────────────────────── Create ──────────────────────

func (s *sprintService) Create(ctx context.Context, req *dto.CreateSprintRequest) (*dto.SprintResponse, error) {
	sprint := &model.Sprint{
		Course: req.Course,
		Module: req.Module,
		Sprint: req.Sprint,
		Code:   req.Code,
		Title:  req.Title,
	}

	if err := s.repo.Sprint.Create(ctx, sprint); err != nil {
		s.logger.Error("创建 Sprint 失败", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}

	return toSprintResponse(sprint), nil
}

// ────────────────────── Update ──────────────────────

func (s *sprintService) Update(ctx context.Context, id int64, req *dto.UpdateSprintRequest) (*dto.SprintResponse, error) {
	fields := map[string]interface{}{}
	if req.Course != nil {
		fields["course"] = *req.Course
	}
	if req.Module != nil {
		fields["module"] = *req.Module
	}
	if req.Sprint != nil {
		fields["sprint"] = *req.Sprint
	}
	if req.Code != nil {
		fields["code"] = *req.Code
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}

	sprint, err := s.repo.Sprint.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSprintNotFound
		}
		s.logger.Error("更新 Sprint 失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toSprintResponse(sprint), nil
}

// ────────────────────── Remove ──────────────────────

// Remove 删除 Sprint；目标不存在时静默成功
func (s *sprintService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Sprint.Remove(ctx, id); err != nil {
		s.logger.Error("删除 Sprint 失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toSprintResponse(sprint *model.Sprint) *dto.SprintResponse {
	return &dto.SprintResponse{
		ID:     sprint.ID,
		Course: sprint.Course,
		Module: sprint.Module,
		Sprint: sprint.Sprint,
		Code:   sprint.Code,
		Title:  sprint.Title,
	}
}

func toSprintResponses(sprints []model.Sprint) []dto.SprintResponse {
	result := make([]dto.SprintResponse, 0, len(sprints))
	for i := range sprints {
		result = append(result, *toSprintResponse(&sprints[i]))
	}
	return result
}
