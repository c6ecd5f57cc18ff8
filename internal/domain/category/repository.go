package category

import (
	"context"
)

// Repository 分类仓储接口
// 分类没有软删除，读路径不需要可见性谓词
type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, c *Category) error

	// List 分页查询分类（按name排序，与原始分类体系的默认排序一致）
	List(ctx context.Context, params ListParams) ([]*Category, int64, error)

	// Children 查询直接子分类
	Children(ctx context.Context, parentID uint) ([]*Category, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int
	PageSize int
}
