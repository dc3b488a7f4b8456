package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/p-stoney/discordbot-restapi/internal/model"
)

// TemplateRepository 消息模板数据访问接口
type TemplateRepository interface {
	Find(ctx context.Context, query string, args ...interface{}) ([]model.Template, error)
	FindAll(ctx context.Context, limit, offset int) ([]model.Template, error)
	FindByID(ctx context.Context, id int64) (*model.Template, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Template, error)
	Create(ctx context.Context, template *model.Template) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.Template, error)
	Remove(ctx context.Context, id int64) error
	FindRandom(ctx context.Context) (*model.Template, error)
}

type templateRepo struct {
	baseRepo[model.Template]
}

// NewTemplateRepo 创建 TemplateRepository 实例
func NewTemplateRepo(db *gorm.DB) TemplateRepository {
	return &templateRepo{baseRepo[model.Template]{db: db}}
}

// FindRandom 在存储层随机排序后取一行
// 注意：不按 is_active 过滤，停用模板同样可能被选中（沿用历史行为）
func (r *templateRepo) FindRandom(ctx context.Context) (*model.Template, error) {
	var template model.Template
	err := r.db.WithContext(ctx).
		Order("RANDOM()").
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}
