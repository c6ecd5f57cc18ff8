package publisher

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/softdelete"
)

// Repository 出版社仓储接口
// 读方法只返回可见记录（is_deleted=false）
type Repository interface {
	softdelete.Repository

	Create(ctx context.Context, p *Publisher) error
	FindByID(ctx context.Context, id uint) (*Publisher, error)
	Update(ctx context.Context, p *Publisher) error
	List(ctx context.Context, params ListParams) ([]*Publisher, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int
	PageSize int
}
