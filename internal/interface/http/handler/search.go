package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appsearch "github.com/xiebiao/bookcatalog/internal/application/search"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// SearchHandler 搜索HTTP处理器
type SearchHandler struct {
	useCase *appsearch.UseCase
}

// NewSearchHandler 创建搜索处理器
func NewSearchHandler(useCase *appsearch.UseCase) *SearchHandler {
	return &SearchHandler{useCase: useCase}
}

// Search 全文搜索
// @Summary      全文搜索
// @Description  type为空走全局搜索（book/author/publisher/category跨类型合并，按相关度排序）；
// @Description  指定type时对单一类型搜索；q为空白串返回全部可见记录
// @Tags         搜索
// @Produce      json
// @Param        q query string false "查询串"
// @Param        type query string false "实体类型(book/author/publisher/category/comment)"
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response
// @Router       /api/v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	req := appsearch.SearchRequest{
		Query:    q.Q,
		Type:     q.Type,
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	start := time.Now()
	result, err := h.useCase.Execute(c.Request.Context(), req)
	metrics.SearchQueriesTotal.WithLabelValues(req.Scope()).Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
