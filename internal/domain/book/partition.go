package book

import (
	"fmt"
	"sort"
	"time"
)

// PartitionRouter 分区路由器
// 设计说明：
// 1. 分区归属是一个显式的路由函数：yearOf(created_at) → 分区名，
//    在写入时校验，而不是依赖存储引擎的默认分区兜底
// 2. 年份超出配置范围的插入必须显式失败（PartitionRangeError），
//    绝不静默落入默认分区
// 3. 行的分区归属只由created_at决定，插入后永不改变（更新不允许修改created_at）
// 4. 所有读操作面向逻辑表，分区对上层完全透明
type PartitionRouter struct {
	years []int // 配置的分区年份（升序）
}

// NewPartitionRouter 创建分区路由器
func NewPartitionRouter(years []int) *PartitionRouter {
	sorted := make([]int, len(years))
	copy(sorted, years)
	sort.Ints(sorted)
	return &PartitionRouter{years: sorted}
}

// Years 配置的分区年份
func (r *PartitionRouter) Years() []int {
	out := make([]int, len(r.years))
	copy(out, r.years)
	return out
}

// Validate 校验created_at是否落在配置的分区年份内
func (r *PartitionRouter) Validate(createdAt time.Time) error {
	year := createdAt.UTC().Year()
	for _, y := range r.years {
		if y == year {
			return nil
		}
	}
	return NewPartitionRangeError(year, r.years)
}

// Route 根据created_at返回分区后缀（如"2024"）
// 越界时返回PartitionRangeError
func (r *PartitionRouter) Route(createdAt time.Time) (string, error) {
	if err := r.Validate(createdAt); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", createdAt.UTC().Year()), nil
}
