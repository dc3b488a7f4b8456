package dto

// ── 学员模块 DTO ──

// CreateUserRequest 创建学员请求
type CreateUserRequest struct {
	Username  string `json:"username"  binding:"required,min=5,max=20"`
	DiscordID string `json:"discordId" binding:"required,len=18"`
}

// UpdateUserRequest 更新学员请求（部分更新，仅校验出现的字段）
type UpdateUserRequest struct {
	Username  *string `json:"username"  binding:"omitempty,min=5,max=20"`
	DiscordID *string `json:"discordId" binding:"omitempty,len=18"`
}

// UserResponse 学员信息响应
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	DiscordID string `json:"discordId"`
}
