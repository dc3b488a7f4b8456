package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User     UserRepository
	Sprint   SprintRepository
	Template TemplateRepository
	Message  MessageRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Sprint:   NewSprintRepo(db),
		Template: NewTemplateRepo(db),
		Message:  NewMessageRepo(db),
	}
}
