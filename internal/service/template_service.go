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

// ── 消息模板模块业务错误 ──

var (
	ErrTemplateNotFound = errors.New("template not found")
)

// TemplateService 消息模板业务接口
type TemplateService interface {
	FindAll(ctx context.Context, limit, offset int) ([]dto.TemplateResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.TemplateResponse, error)
	FindRandom(ctx context.Context) (*dto.TemplateResponse, error)
	Create(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	Remove(ctx context.Context, id int64) error
}

type templateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTemplateService 创建 TemplateService 实例
func NewTemplateService(repo *repository.Repository, logger *zap.Logger) TemplateService {
	return &templateService{repo: repo, logger: logger}
}

// ────────────────────── FindAll ──────────────────────

func (s *templateService) FindAll(ctx context.Context, limit, offset int) ([]dto.TemplateResponse, error) {
	templates, err := s.repo.Template.FindAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error("查询模板列表失败", zap.Error(err))
		return nil, err
	}
	if len(templates) == 0 {
		return nil, ErrTemplateNotFound
	}

	result := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		result = append(result, *toTemplateResponse(&templates[i]))
	}

	return result, nil
}

// ────────────────────── FindByID ──────────────────────

func (s *templateService) FindByID(ctx context.Context, id int64) (*dto.TemplateResponse, error) {
	template, err := s.repo.Template.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("查询模板失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toTemplateResponse(template), nil
}

// ────────────────────── FindRandom ──────────────────────

func (s *templateService) FindRandom(ctx context.Context) (*dto.TemplateResponse, error) {
	template, err := s.repo.Template.FindRandom(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("随机抽取模板失败", zap.Error(err))
		return nil, err
	}

	return toTemplateResponse(template), nil
}

// ────────────────────── Create ──────────────────────

func (s *templateService) Create(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	template := &model.Template{
		Template: req.Template,
		IsActive: req.IsActive,
	}

	if err := s.repo.Template.Create(ctx, template); err != nil {
		s.logger.Error("创建模板失败", zap.Error(err))
		return nil, err
	}

	return toTemplateResponse(template), nil
}

// ────────────────────── Update ──────────────────────

func (s *templateService) Update(ctx context.Context, id int64, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	fields := map[string]interface{}{}
	if req.Template != nil {
		fields["template"] = *req.Template
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	template, err := s.repo.Template.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("更新模板失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toTemplateResponse(template), nil
}

// ────────────────────── Remove ──────────────────────

// Remove 删除模板；目标不存在时静默成功
func (s *templateService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Template.Remove(ctx, id); err != nil {
		s.logger.Error("删除模板失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toTemplateResponse(template *model.Template) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:       template.ID,
		Template: template.Template,
		IsActive: template.IsActive,
	}
}
