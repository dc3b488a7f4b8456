package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/p-stoney/discordbot-restapi/pkg/response"
)

// parseIDParam 解析路径参数中的数字 id
// 非纯数字或非正数时返回 400 并中止处理
func parseIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
