package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/p-stoney/discordbot-restapi/internal/model"
)

// SprintRepository Sprint 数据访问接口
type SprintRepository interface {
	Find(ctx context.Context, query string, args ...interface{}) ([]model.Sprint, error)
	FindAll(ctx context.Context, limit, offset int) ([]model.Sprint, error)
	FindByID(ctx context.Context, id int64) (*model.Sprint, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Sprint, error)
	Create(ctx context.Context, sprint *model.Sprint) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.Sprint, error)
	Remove(ctx context.Context, id int64) error
	FindByCode(ctx context.Context, code string) (*model.Sprint, error)
	FindByCourse(ctx context.Context, course string) ([]model.Sprint, error)
}

type sprintRepo struct {
	baseRepo[model.Sprint]
}

// NewSprintRepo 创建 SprintRepository 实例
func NewSprintRepo(db *gorm.DB) SprintRepository {
	return &sprintRepo{baseRepo[model.Sprint]{db: db}}
}

func (r *sprintRepo) FindByCode(ctx context.Context, code string) (*model.Sprint, error) {
	var sprint model.Sprint
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&sprint).Error
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (r *sprintRepo) FindByCourse(ctx context.Context, course string) ([]model.Sprint, error) {
	var sprints []model.Sprint
	err := r.db.WithContext(ctx).
		Where("course = ?", course).
		Find(&sprints).Error
	return sprints, err
}
