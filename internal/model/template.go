package model

// Template 祝贺消息模板表 — 对应 templates
// template 文本中包含 {user} 与 {sprint} 占位符
// is_active 按历史数据约定存储字符串 "0"/"1"
type Template struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Template string `gorm:"type:text;not null"       json:"template"`
	IsActive string `gorm:"type:text;not null"       json:"isActive"`
}

// TableName 指定表名
func (Template) TableName() string { return "templates" }
