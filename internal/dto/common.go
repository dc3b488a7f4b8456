package dto

// ── 通用分页请求 ──

// PaginationRequest 通用分页参数（limit/offset 语义与历史 API 保持一致）
type PaginationRequest struct {
	Limit  int `form:"limit"  binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// GetLimit 获取每页数量（含默认值）
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return 10
	}
	return p.Limit
}

// GetOffset 获取偏移量（含默认值）
func (p *PaginationRequest) GetOffset() int {
	if p.Offset < 0 {
		return 0
	}
	return p.Offset
}
