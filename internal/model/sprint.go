package model

// Sprint 课程里程碑表 — 对应 sprints
// code 为人类可读的唯一编号，形如 WD-1.1（{course}-{module}.{sprint}）
type Sprint struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"       json:"id"`
	Course string `gorm:"type:text;not null"             json:"course"`
	Module int    `gorm:"not null"                       json:"module"`
	Sprint int    `gorm:"not null"                       json:"sprint"`
	Code   string `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Title  string `gorm:"type:text;not null"             json:"title"`
}

// TableName 指定表名
func (Sprint) TableName() string { return "sprints" }
