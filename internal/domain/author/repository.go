package author

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/softdelete"
)

// Repository 作者仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 所有读方法只返回可见记录（is_deleted=false），可见性谓词由实现层显式拼接
// 3. 组合softdelete.Repository获得幂等的软删除/恢复
type Repository interface {
	softdelete.Repository

	// Create 创建作者（同事务内同步重算搜索向量）
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查找可见作者
	FindByID(ctx context.Context, id uint) (*Author, error)

	// Update 更新作者信息（同事务内同步重算搜索向量）
	Update(ctx context.Context, a *Author) error

	// List 分页查询可见作者列表
	List(ctx context.Context, params ListParams) ([]*Author, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int // 页码（从1开始）
	PageSize int // 每页数量
}
