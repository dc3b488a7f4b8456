package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/p-stoney/discordbot-restapi/internal/model"
)

// MessageRepository 祝贺消息记录数据访问接口
type MessageRepository interface {
	Find(ctx context.Context, query string, args ...interface{}) ([]model.Message, error)
	FindAll(ctx context.Context, limit, offset int) ([]model.Message, error)
	FindByID(ctx context.Context, id int64) (*model.Message, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Message, error)
	Create(ctx context.Context, message *model.Message) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.Message, error)
	Remove(ctx context.Context, id int64) error
	FindByUserID(ctx context.Context, userID int64) ([]model.Message, error)
	FindBySprintID(ctx context.Context, sprintID int64) ([]model.Message, error)
}

type messageRepo struct {
	baseRepo[model.Message]
}

// NewMessageRepo 创建 MessageRepository 实例
func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{baseRepo[model.Message]{db: db}}
}

func (r *messageRepo) FindByUserID(ctx context.Context, userID int64) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepo) FindBySprintID(ctx context.Context, sprintID int64) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("sprint_id = ?", sprintID).
		Find(&messages).Error
	return messages, err
}
