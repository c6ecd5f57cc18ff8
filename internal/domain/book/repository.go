package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/softdelete"
)

// Repository 图书仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 所有读方法面向逻辑表（分区透明），且只返回可见记录
// 3. Create/Update在同一事务内同步重算搜索向量，失败则整个写入回滚
type Repository interface {
	softdelete.Repository

	Create(ctx context.Context, b *Book) error
	FindByID(ctx context.Context, id uint) (*Book, error)
	Update(ctx context.Context, b *Book) error
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// FormatRepository 图书版本仓储接口
type FormatRepository interface {
	softdelete.Repository

	Create(ctx context.Context, f *Format) error
	FindByID(ctx context.Context, id uint) (*Format, error)
	Update(ctx context.Context, f *Format) error

	// ListByBook 查询某图书的全部可见版本
	ListByBook(ctx context.Context, bookID uint) ([]*Format, error)
}

// ListParams 图书列表查询参数
// 过滤条件为nil/零值时不生效
type ListParams struct {
	Page      int
	PageSize  int
	AuthorID  uint  // 按作者过滤（childrenOf: Books-by-Author）
	Publisher uint  // 按出版社过滤
	Category  uint  // 按分类过滤
	Available *bool // 按上架状态过滤
}
