// Package handler HTTP处理器
// Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应，
// 不包含业务逻辑
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// parseIDParam 解析路径中的ID参数，非法时写错误响应并返回false
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的"+name+"参数")
		return 0, false
	}
	return uint(id), true
}
