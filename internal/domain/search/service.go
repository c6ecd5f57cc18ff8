package search

import (
	"context"
	"sort"
	"strings"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Querier 单类型排名查询接口（由infrastructure层实现）
// 约定：
// 1. 只返回可见记录（is_deleted=false）
// 2. 非空查询串：按加权搜索向量匹配并计算rank，无匹配时返回空序列
// 3. 空白查询串：返回全部可见记录，rank=0，按created_at降序、id升序
// 4. 返回序列已按(rank desc, created_at desc, id asc)排好序
type Querier interface {
	Search(ctx context.Context, typ EntityType, query string, limit, offset int) ([]Hit, int64, error)
}

// Service 排名搜索领域服务
// 设计说明：
// 1. 单类型搜索直接下推分页到存储层（排序在SQL内完成）
// 2. 全局搜索对Book/Author/Publisher/Category各跑一次单类型查询，
//    在进程内做k路归并排序后再分页——分页永远作用于合并后的序列，
//    而不是合并之前（不依赖数据库层的跨表UNION）
type Service interface {
	// SearchType 单类型排名搜索
	SearchType(ctx context.Context, typ EntityType, params Params) ([]Hit, int64, error)

	// SearchGlobal 全局排名搜索（结果带{type, data, rank}标签）
	SearchGlobal(ctx context.Context, params Params) ([]Hit, int64, error)
}

type service struct {
	querier Querier
}

// NewService 创建搜索领域服务
func NewService(querier Querier) Service {
	return &service{querier: querier}
}

// SearchType 单类型搜索
func (s *service) SearchType(ctx context.Context, typ EntityType, params Params) ([]Hit, int64, error) {
	if !typ.IsValid() {
		return nil, 0, apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的搜索类型: "+string(typ))
	}

	query := strings.TrimSpace(params.Query)
	offset := (params.Page - 1) * params.PageSize

	return s.querier.Search(ctx, typ, query, params.PageSize, offset)
}

// SearchGlobal 全局搜索
// 每个类型取前offset+limit条（合并后的前N条必然落在各类型的前N条之内），
// 归并排序后截取请求页
func (s *service) SearchGlobal(ctx context.Context, params Params) ([]Hit, int64, error) {
	query := strings.TrimSpace(params.Query)
	offset := (params.Page - 1) * params.PageSize
	fetch := offset + params.PageSize

	merged := make([]Hit, 0, fetch*len(GlobalTypes))
	var total int64

	// 1. 逐类型执行单类型搜索
	for _, typ := range GlobalTypes {
		hits, typeTotal, err := s.querier.Search(ctx, typ, query, fetch, 0)
		if err != nil {
			return nil, 0, err
		}
		merged = append(merged, hits...)
		total += typeTotal
	}

	// 2. k路归并：rank降序 → created_at降序 → id升序
	SortHits(merged)

	// 3. 分页作用于合并后的序列
	if offset >= len(merged) {
		return []Hit{}, total, nil
	}
	end := offset + params.PageSize
	if end > len(merged) {
		end = len(merged)
	}

	return merged[offset:end], total, nil
}

// SortHits 按(rank desc, created_at desc, id asc)排序
// 各类型的rank使用同一套权重标度计算，跨类型可比；
// 三级排序键保证完全确定的顺序
func SortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Rank != hits[j].Rank {
			return hits[i].Rank > hits[j].Rank
		}
		if !hits[i].CreatedAt.Equal(hits[j].CreatedAt) {
			return hits[i].CreatedAt.After(hits[j].CreatedAt)
		}
		// 同类型内id升序；跨类型按类型名保证确定性
		if hits[i].Type != hits[j].Type {
			return hits[i].Type < hits[j].Type
		}
		return hits[i].ID < hits[j].ID
	})
}
