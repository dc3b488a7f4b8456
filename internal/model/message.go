package model

import "time"

// Message 已发送祝贺消息记录表 — 对应 messages
// timestamp 由数据库在插入时生成；status 记录发送结果的 HTTP 状态码
type Message struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"                          json:"id"`
	UserID    int64     `gorm:"column:user_id;not null"                           json:"userId"`
	SprintID  int64     `gorm:"column:sprint_id;not null"                         json:"sprintId"`
	Timestamp time.Time `gorm:"column:timestamp;not null;default:CURRENT_TIMESTAMP" json:"timestamp"`
	Status    int       `gorm:"not null"                                          json:"status"`
	GifURL    string    `gorm:"column:gif_url;type:text;not null"                 json:"gifUrl"`
	Message   string    `gorm:"column:message;type:text;not null"                 json:"message"`
}

// TableName 指定表名
func (Message) TableName() string { return "messages" }
