package model

// User 学员表 — 对应 users
type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"      json:"id"`
	Username  string `gorm:"type:text;not null;uniqueIndex" json:"username"`
	DiscordID string `gorm:"type:text;not null;uniqueIndex" json:"discordId"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
