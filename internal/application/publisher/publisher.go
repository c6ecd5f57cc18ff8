package publisher

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
)

// UseCase 出版社用例
type UseCase struct {
	service publisher.Service
	limits  application.PageLimits
}

// NewUseCase 创建出版社用例
func NewUseCase(service publisher.Service, limits application.PageLimits) *UseCase {
	return &UseCase{service: service, limits: limits}
}

// CreatePublisherRequest 创建出版社请求
type CreatePublisherRequest struct {
	Name    string
	Address string
	Email   string
	Phone   string
	Website string
}

// UpdatePublisherRequest 更新出版社请求（空字段保持不变）
type UpdatePublisherRequest struct {
	Name    string
	Address string
	Email   string
	Phone   string
	Website string
}

// PublisherResponse 出版社响应
type PublisherResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Website   string `json:"website"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListPublishersResponse 出版社列表响应
type ListPublishersResponse struct {
	List       []PublisherResponse `json:"list"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// Create 创建出版社
func (uc *UseCase) Create(ctx context.Context, req CreatePublisherRequest) (*PublisherResponse, error) {
	p, err := uc.service.CreatePublisher(ctx, publisher.NewPublisher(
		req.Name, req.Address, req.Email, req.Phone, req.Website))
	if err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Get 获取出版社详情
func (uc *UseCase) Get(ctx context.Context, id uint) (*PublisherResponse, error) {
	p, err := uc.service.GetPublisher(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Update 更新出版社信息
func (uc *UseCase) Update(ctx context.Context, id uint, req UpdatePublisherRequest) (*PublisherResponse, error) {
	p, err := uc.service.UpdatePublisher(ctx, id, req.Name, req.Address, req.Email, req.Phone, req.Website)
	if err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Delete 软删除出版社（幂等）
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.service.DeletePublisher(ctx, id)
}

// Restore 恢复出版社（幂等）
func (uc *UseCase) Restore(ctx context.Context, id uint) error {
	return uc.service.RestorePublisher(ctx, id)
}

// List 分页查询出版社
func (uc *UseCase) List(ctx context.Context, page, pageSize int) (*ListPublishersResponse, error) {
	page, pageSize = uc.limits.Normalize(page, pageSize)

	publishers, total, err := uc.service.ListPublishers(ctx, publisher.ListParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	list := make([]PublisherResponse, len(publishers))
	for i, p := range publishers {
		list[i] = *toResponse(p)
	}

	return &ListPublishersResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: application.TotalPages(total, pageSize),
	}, nil
}

func toResponse(p *publisher.Publisher) *PublisherResponse {
	return &PublisherResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Email:     p.Email,
		Phone:     p.Phone,
		Website:   p.Website,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
