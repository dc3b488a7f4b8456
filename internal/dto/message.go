package dto

// ── 祝贺消息模块 DTO ──

// CreateMessageRequest 创建消息记录请求
type CreateMessageRequest struct {
	UserID   int64  `json:"userId"   binding:"required,gt=0"`
	SprintID int64  `json:"sprintId" binding:"required,gt=0"`
	Status   int    `json:"status"   binding:"required,gte=100,lte=599"`
	GifURL   string `json:"gifUrl"   binding:"required,url"`
	Message  string `json:"message"  binding:"required,min=1,max=500"`
}

// UpdateMessageRequest 更新消息记录请求（部分更新，仅校验出现的字段）
type UpdateMessageRequest struct {
	UserID   *int64  `json:"userId"   binding:"omitempty,gt=0"`
	SprintID *int64  `json:"sprintId" binding:"omitempty,gt=0"`
	Status   *int    `json:"status"   binding:"omitempty,gte=100,lte=599"`
	GifURL   *string `json:"gifUrl"   binding:"omitempty,url"`
	Message  *string `json:"message"  binding:"omitempty,min=1,max=500"`
}

// ListMessagesRequest 消息列表查询参数
// username 与 sprint 为二选一的过滤条件，与普通分页互斥
type ListMessagesRequest struct {
	PaginationRequest
	Username string `form:"username" binding:"omitempty,min=5,max=20"`
	Sprint   string `form:"sprint"   binding:"omitempty"`
}

// SendMessageRequest 发送祝贺消息请求
type SendMessageRequest struct {
	Username string `json:"username" binding:"required,min=5,max=20"`
	Code     string `json:"code"     binding:"required"`
}

// MessageResponse 消息记录响应
type MessageResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	SprintID  int64  `json:"sprintId"`
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	GifURL    string `json:"gifUrl"`
	Message   string `json:"message"`
}
