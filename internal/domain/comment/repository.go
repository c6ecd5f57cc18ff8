package comment

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/softdelete"
)

// Repository 评论仓储接口
// 读方法只返回可见记录；FindAnyByID例外（校验父评论归属时，
// 父评论即使已被软删除，归属规则仍然成立）
type Repository interface {
	softdelete.Repository

	Create(ctx context.Context, c *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)

	// FindAnyByID 不过滤可见性的查找（仅用于父评论归属校验）
	FindAnyByID(ctx context.Context, id uint) (*Comment, error)

	Update(ctx context.Context, c *Comment) error

	// ListByBook 分页查询某图书的可见评论（按created_at降序）
	ListByBook(ctx context.Context, bookID uint, params ListParams) ([]*Comment, int64, error)

	// Replies 查询某评论的直接可见回复（按created_at升序）
	Replies(ctx context.Context, parentID uint) ([]*Comment, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int
	PageSize int
	TopLevel bool // 只返回顶层评论（不含回复）
}
