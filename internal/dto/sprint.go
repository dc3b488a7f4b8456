package dto

// ── 课程里程碑模块 DTO ──

// CreateSprintRequest 创建 Sprint 请求
type CreateSprintRequest struct {
	Course string `json:"course" binding:"required,len=2"`
	Module int    `json:"module" binding:"required,gt=0"`
	Sprint int    `json:"sprint" binding:"required,gt=0"`
	Code   string `json:"code"   binding:"required"`
	Title  string `json:"title"  binding:"required,min=1,max=100"`
}

// UpdateSprintRequest 更新 Sprint 请求（部分更新，仅校验出现的字段）
type UpdateSprintRequest struct {
	Course *string `json:"course" binding:"omitempty,len=2"`
	Module *int    `json:"module" binding:"omitempty,gt=0"`
	Sprint *int    `json:"sprint" binding:"omitempty,gt=0"`
	Code   *string `json:"code"   binding:"omitempty"`
	Title  *string `json:"title"  binding:"omitempty,min=1,max=100"`
}

// SprintResponse Sprint 信息响应
type SprintResponse struct {
	ID     int64  `json:"id"`
	Course string `json:"course"`
	Module int    `json:"module"`
	Sprint int    `json:"sprint"`
	Code   string `json:"code"`
	Title  string `json:"title"`
}
