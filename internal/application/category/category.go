package category

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
)

// UseCase 分类用例
// 分类没有删除/恢复操作：永久性分类体系
type UseCase struct {
	service category.Service
	limits  application.PageLimits
}

// NewUseCase 创建分类用例
func NewUseCase(service category.Service, limits application.PageLimits) *UseCase {
	return &UseCase{service: service, limits: limits}
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string
	Description string
	ParentID    *uint
}

// UpdateCategoryRequest 更新分类请求
// MoveParent=true时把父分类调整为ParentID（nil表示提升为顶级）
type UpdateCategoryRequest struct {
	Name        string
	Description string
	ParentID    *uint
	MoveParent  bool
}

// CategoryResponse 分类响应
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
}

// ListCategoriesResponse 分类列表响应
type ListCategoriesResponse struct {
	List       []CategoryResponse `json:"list"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// Create 创建分类
func (uc *UseCase) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	c, err := uc.service.CreateCategory(ctx, category.NewCategory(req.Name, req.Description, req.ParentID))
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Get 获取分类详情
func (uc *UseCase) Get(ctx context.Context, id uint) (*CategoryResponse, error) {
	c, err := uc.service.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Update 更新分类
func (uc *UseCase) Update(ctx context.Context, id uint, req UpdateCategoryRequest) (*CategoryResponse, error) {
	c, err := uc.service.UpdateCategory(ctx, id, req.Name, req.Description, req.ParentID, req.MoveParent)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// List 分页查询分类
func (uc *UseCase) List(ctx context.Context, page, pageSize int) (*ListCategoriesResponse, error) {
	page, pageSize = uc.limits.Normalize(page, pageSize)

	categories, total, err := uc.service.ListCategories(ctx, category.ListParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	list := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = *toResponse(c)
	}

	return &ListCategoriesResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: application.TotalPages(total, pageSize),
	}, nil
}

// Subcategories 查询直接子分类
func (uc *UseCase) Subcategories(ctx context.Context, id uint) ([]CategoryResponse, error) {
	children, err := uc.service.Subcategories(ctx, id)
	if err != nil {
		return nil, err
	}

	list := make([]CategoryResponse, len(children))
	for i, c := range children {
		list[i] = *toResponse(c)
	}
	return list, nil
}

func toResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
	}
}
