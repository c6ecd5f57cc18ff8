package search

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/search"
)

// UseCase 搜索用例
// 设计说明：
// 1. Type为空串走全局搜索（Book/Author/Publisher/Category跨类型合并），
//    否则走单类型搜索
// 2. 全局结果每条带{type, rank, data}标签，rank跨类型可比
type UseCase struct {
	service search.Service
	limits  application.PageLimits
}

// NewUseCase 创建搜索用例
func NewUseCase(service search.Service, limits application.PageLimits) *UseCase {
	return &UseCase{service: service, limits: limits}
}

// SearchRequest 搜索请求
type SearchRequest struct {
	Query    string
	Type     string // book/author/publisher/category/comment，空串=全局
	Page     int
	PageSize int
}

// SearchResponse 搜索响应
type SearchResponse struct {
	List       []search.Hit `json:"list"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// Execute 执行搜索
func (uc *UseCase) Execute(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	page, pageSize := uc.limits.Normalize(req.Page, req.PageSize)
	params := search.Params{
		Query:    req.Query,
		Page:     page,
		PageSize: pageSize,
	}

	var (
		hits  []search.Hit
		total int64
		err   error
	)
	if req.Type == "" {
		hits, total, err = uc.service.SearchGlobal(ctx, params)
	} else {
		hits, total, err = uc.service.SearchType(ctx, search.EntityType(req.Type), params)
	}
	if err != nil {
		return nil, err
	}

	return &SearchResponse{
		List:       hits,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: application.TotalPages(total, pageSize),
	}, nil
}

// Scope 返回用于指标标签的搜索范围
func (req SearchRequest) Scope() string {
	if req.Type == "" {
		return "global"
	}
	return req.Type
}
