package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day int) time.Time {
	return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
}

// fakeQuerier 按类型返回预排序的结果序列（模拟存储层的排序约定）
type fakeQuerier struct {
	hits map[EntityType][]Hit
}

func (q *fakeQuerier) Search(ctx context.Context, typ EntityType, query string, limit, offset int) ([]Hit, int64, error) {
	all := q.hits[typ]
	total := int64(len(all))

	if offset >= len(all) {
		return []Hit{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// TestSortHits 三级排序键：rank降序 → created_at降序 → id升序
func TestSortHits(t *testing.T) {
	hits := []Hit{
		{Type: TypeBook, Rank: 0.3, CreatedAt: ts(1), ID: 5},
		{Type: TypeAuthor, Rank: 0.9, CreatedAt: ts(2), ID: 1},
		{Type: TypeBook, Rank: 0.9, CreatedAt: ts(3), ID: 2},
		{Type: TypeBook, Rank: 0.9, CreatedAt: ts(3), ID: 1},
		{Type: TypePublisher, Rank: 0.5, CreatedAt: ts(1), ID: 7},
	}

	SortHits(hits)

	// rank=0.9组在前：created_at降序（ts3 > ts2），同时间id升序
	assert.Equal(t, uint(1), hits[0].ID)
	assert.Equal(t, TypeBook, hits[0].Type)
	assert.Equal(t, uint(2), hits[1].ID)
	assert.Equal(t, uint(1), hits[2].ID)
	assert.Equal(t, TypeAuthor, hits[2].Type)
	// 其后按rank降序
	assert.Equal(t, 0.5, hits[3].Rank)
	assert.Equal(t, 0.3, hits[4].Rank)
}

// TestService_SearchType 单类型搜索
func TestService_SearchType(t *testing.T) {
	ctx := context.Background()
	querier := &fakeQuerier{hits: map[EntityType][]Hit{
		TypeBook: {
			{Type: TypeBook, Rank: 0.8, CreatedAt: ts(3), ID: 1},
			{Type: TypeBook, Rank: 0.6, CreatedAt: ts(2), ID: 2},
			{Type: TypeBook, Rank: 0.4, CreatedAt: ts(1), ID: 3},
		},
	}}
	svc := NewService(querier)

	t.Run("分页下推到存储层", func(t *testing.T) {
		hits, total, err := svc.SearchType(ctx, TypeBook, Params{Query: "go", Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, hits, 1)
		assert.Equal(t, uint(3), hits[0].ID)
	})

	t.Run("不支持的类型拒绝", func(t *testing.T) {
		_, _, err := svc.SearchType(ctx, EntityType("user"), Params{Query: "go", Page: 1, PageSize: 10})
		assert.Error(t, err)
	})
}

// TestService_SearchGlobal 全局搜索的归并与分页
func TestService_SearchGlobal(t *testing.T) {
	ctx := context.Background()

	// 四个类型各有若干结果，rank交错，验证合并后的全序
	querier := &fakeQuerier{hits: map[EntityType][]Hit{
		TypeBook: {
			{Type: TypeBook, Rank: 0.9, CreatedAt: ts(5), ID: 1},
			{Type: TypeBook, Rank: 0.3, CreatedAt: ts(1), ID: 2},
		},
		TypeAuthor: {
			{Type: TypeAuthor, Rank: 0.7, CreatedAt: ts(4), ID: 1},
		},
		TypePublisher: {
			{Type: TypePublisher, Rank: 0.5, CreatedAt: ts(3), ID: 1},
		},
		TypeCategory: {
			{Type: TypeCategory, Rank: 0.8, CreatedAt: time.Time{}, ID: 1},
		},
	}}
	svc := NewService(querier)

	t.Run("合并后按rank全序排列", func(t *testing.T) {
		hits, total, err := svc.SearchGlobal(ctx, Params{Query: "go", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total, "total是各类型匹配数之和")
		require.Len(t, hits, 5)

		ranks := []float64{hits[0].Rank, hits[1].Rank, hits[2].Rank, hits[3].Rank, hits[4].Rank}
		assert.Equal(t, []float64{0.9, 0.8, 0.7, 0.5, 0.3}, ranks)
		assert.Equal(t, TypeBook, hits[0].Type)
		assert.Equal(t, TypeCategory, hits[1].Type)
	})

	t.Run("分页作用于合并后的序列", func(t *testing.T) {
		hits, total, err := svc.SearchGlobal(ctx, Params{Query: "go", Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, hits, 2)
		// 全序第3、4名
		assert.Equal(t, 0.7, hits[0].Rank)
		assert.Equal(t, 0.5, hits[1].Rank)
	})

	t.Run("超出末页返回空序列", func(t *testing.T) {
		hits, total, err := svc.SearchGlobal(ctx, Params{Query: "go", Page: 10, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Empty(t, hits)
	})
}

// TestGlobalTypes 评论不参与全局合并
func TestGlobalTypes(t *testing.T) {
	assert.NotContains(t, GlobalTypes, TypeComment)
	assert.Len(t, GlobalTypes, 4)
	assert.True(t, TypeComment.IsValid(), "评论可以单类型搜索")
}
