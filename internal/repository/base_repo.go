package repository

import (
	"context"

	"gorm.io/gorm"
)

// baseRepo 按行模型参数化的通用数据访问类型
// 提供所有实体共享的 CRUD 操作；存储层错误（如唯一约束冲突）原样向上传播
type baseRepo[M any] struct {
	db *gorm.DB
}

// Find 按任意过滤表达式查询
func (r *baseRepo[M]) Find(ctx context.Context, query string, args ...interface{}) ([]M, error) {
	var rows []M
	err := r.db.WithContext(ctx).Where(query, args...).Find(&rows).Error
	return rows, err
}

// FindAll 分页查询，不保证排序
func (r *baseRepo[M]) FindAll(ctx context.Context, limit, offset int) ([]M, error) {
	var rows []M
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&rows).Error
	return rows, err
}

// FindByID 按主键查询单行
func (r *baseRepo[M]) FindByID(ctx context.Context, id int64) (*M, error) {
	var row M
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDs 按主键集合查询
func (r *baseRepo[M]) FindByIDs(ctx context.Context, ids []int64) ([]M, error) {
	var rows []M
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

// Create 插入一行，数据库回填自增主键及默认列
func (r *baseRepo[M]) Create(ctx context.Context, row *M) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Update 对指定主键的行应用部分字段，返回更新后的整行
// 无匹配行时返回 gorm.ErrRecordNotFound；空字段集退化为读取
func (r *baseRepo[M]) Update(ctx context.Context, id int64, fields map[string]interface{}) (*M, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	tx := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByID(ctx, id)
}

// Remove 按主键删除；无匹配行时静默成功
func (r *baseRepo[M]) Remove(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(new(M), "id = ?", id).Error
}
