package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/p-stoney/discordbot-restapi/internal/model"
)

// UserRepository 学员数据访问接口
type UserRepository interface {
	Find(ctx context.Context, query string, args ...interface{}) ([]model.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.User, error)
	Remove(ctx context.Context, id int64) error
	FindByName(ctx context.Context, username string) (*model.User, error)
	FindByDiscordID(ctx context.Context, discordID string) (*model.User, error)
}

type userRepo struct {
	baseRepo[model.User]
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{baseRepo[model.User]{db: db}}
}

func (r *userRepo) FindByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByDiscordID(ctx context.Context, discordID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("discord_id = ?", discordID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
