package dto

// ── 消息模板模块 DTO ──

// CreateTemplateRequest 创建模板请求
// isActive 沿用历史数据格式，取值 "0" 或 "1"
type CreateTemplateRequest struct {
	Template string `json:"template" binding:"required,min=5,max=100"`
	IsActive string `json:"isActive" binding:"required,oneof=0 1"`
}

// UpdateTemplateRequest 更新模板请求（部分更新，仅校验出现的字段）
type UpdateTemplateRequest struct {
	Template *string `json:"template" binding:"omitempty,min=5,max=100"`
	IsActive *string `json:"isActive" binding:"omitempty,oneof=0 1"`
}

// TemplateResponse 模板信息响应
type TemplateResponse struct {
	ID       int64  `json:"id"`
	Template string `json:"template"`
	IsActive string `json:"isActive"`
}
