package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// UseCase 图书用例（含图书版本）
type UseCase struct {
	service book.Service
	limits  application.PageLimits
}

// NewUseCase 创建图书用例
func NewUseCase(service book.Service, limits application.PageLimits) *UseCase {
	return &UseCase{service: service, limits: limits}
}

// =========================================
// 应用层DTO
// =========================================

// CreateBookRequest 创建图书请求
// CreatedAt可选（RFC3339），用于历史数据回填；
// 留空使用当前时间。年份必须落在配置的分区范围内
type CreateBookRequest struct {
	Title           string
	Description     string
	Price           int64 // 分
	PublicationYear int
	Available       *bool
	AuthorID        uint
	PublisherID     *uint
	CategoryID      *uint
	CreatedAt       string
}

// UpdateBookRequest 更新图书请求（nil/空字段保持不变）
type UpdateBookRequest struct {
	Title           string
	Description     string
	PublicationYear int
	Price           *int64
	Available       *bool
}

// BookResponse 图书响应
type BookResponse struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Price           int64  `json:"price"` // 分
	PublicationYear int    `json:"publication_year"`
	Available       bool   `json:"available"`
	AuthorID        uint   `json:"author_id"`
	PublisherID     *uint  `json:"publisher_id"`
	CategoryID      *uint  `json:"category_id"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ListBooksRequest 图书列表查询请求
type ListBooksRequest struct {
	Page      int
	PageSize  int
	AuthorID  uint
	Publisher uint
	Category  uint
	Available *bool
}

// ListBooksResponse 图书列表响应
type ListBooksResponse struct {
	List       []BookResponse `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// AddFormatRequest 添加图书版本请求
type AddFormatRequest struct {
	BookID     uint
	FormatType string // PHYSICAL/PDF/EPUB/AUDIO
	Price      int64
	Stock      int
	CreatedAt  string // 可选RFC3339，同图书的分区规则
}

// UpdateFormatRequest 更新图书版本请求
type UpdateFormatRequest struct {
	Price int64
	Stock int
}

// FormatResponse 图书版本响应
type FormatResponse struct {
	ID         uint   `json:"id"`
	BookID     uint   `json:"book_id"`
	FormatType string `json:"format_type"`
	Price      int64  `json:"price"`
	Stock      int    `json:"stock"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// =========================================
// 图书用例方法
// =========================================

// Create 创建图书
func (uc *UseCase) Create(ctx context.Context, req CreateBookRequest) (*BookResponse, error) {
	createdAt, err := parseTimestamp(req.CreatedAt)
	if err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	b, err := uc.service.CreateBook(ctx, book.NewBook(
		req.Title, req.Description, req.Price, req.PublicationYear,
		available, req.AuthorID, req.PublisherID, req.CategoryID, createdAt))
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// Get 获取图书详情
func (uc *UseCase) Get(ctx context.Context, id uint) (*BookResponse, error) {
	b, err := uc.service.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// Update 更新图书
func (uc *UseCase) Update(ctx context.Context, id uint, req UpdateBookRequest) (*BookResponse, error) {
	b, err := uc.service.UpdateBook(ctx, id, req.Title, req.Description,
		req.PublicationYear, req.Price, req.Available)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// Delete 软删除图书（幂等）
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.service.DeleteBook(ctx, id)
}

// Restore 恢复图书（幂等）
func (uc *UseCase) Restore(ctx context.Context, id uint) error {
	return uc.service.RestoreBook(ctx, id)
}

// List 分页查询图书
func (uc *UseCase) List(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	page, pageSize := uc.limits.Normalize(req.Page, req.PageSize)

	books, total, err := uc.service.ListBooks(ctx, book.ListParams{
		Page:      page,
		PageSize:  pageSize,
		AuthorID:  req.AuthorID,
		Publisher: req.Publisher,
		Category:  req.Category,
		Available: req.Available,
	})
	if err != nil {
		return nil, err
	}

	list := make([]BookResponse, len(books))
	for i, b := range books {
		list[i] = *toBookResponse(b)
	}

	return &ListBooksResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: application.TotalPages(total, pageSize),
	}, nil
}

// =========================================
// 图书版本用例方法
// =========================================

// AddFormat 为图书添加版本
func (uc *UseCase) AddFormat(ctx context.Context, req AddFormatRequest) (*FormatResponse, error) {
	createdAt, err := parseTimestamp(req.CreatedAt)
	if err != nil {
		return nil, err
	}

	f, err := uc.service.AddFormat(ctx, book.NewFormat(
		req.BookID, book.FormatType(req.FormatType), req.Price, req.Stock, createdAt))
	if err != nil {
		return nil, err
	}
	return toFormatResponse(f), nil
}

// GetFormat 获取版本详情
func (uc *UseCase) GetFormat(ctx context.Context, id uint) (*FormatResponse, error) {
	f, err := uc.service.GetFormat(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFormatResponse(f), nil
}

// UpdateFormat 更新版本价格与库存
func (uc *UseCase) UpdateFormat(ctx context.Context, id uint, req UpdateFormatRequest) (*FormatResponse, error) {
	f, err := uc.service.UpdateFormat(ctx, id, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}
	return toFormatResponse(f), nil
}

// DeleteFormat 软删除版本（幂等）
func (uc *UseCase) DeleteFormat(ctx context.Context, id uint) error {
	return uc.service.DeleteFormat(ctx, id)
}

// RestoreFormat 恢复版本（幂等）
func (uc *UseCase) RestoreFormat(ctx context.Context, id uint) error {
	return uc.service.RestoreFormat(ctx, id)
}

// ListFormats 查询图书的全部可见版本
func (uc *UseCase) ListFormats(ctx context.Context, bookID uint) ([]FormatResponse, error) {
	formats, err := uc.service.ListFormats(ctx, bookID)
	if err != nil {
		return nil, err
	}

	list := make([]FormatResponse, len(formats))
	for i, f := range formats {
		list[i] = *toFormatResponse(f)
	}
	return list, nil
}

// =========================================
// 辅助函数
// =========================================

func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Description:     b.Description,
		Price:           b.Price,
		PublicationYear: b.PublicationYear,
		Available:       b.Available,
		AuthorID:        b.AuthorID,
		PublisherID:     b.PublisherID,
		CategoryID:      b.CategoryID,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func toFormatResponse(f *book.Format) *FormatResponse {
	return &FormatResponse{
		ID:         f.ID,
		BookID:     f.BookID,
		FormatType: string(f.FormatType),
		Price:      f.Price,
		Stock:      f.Stock,
		CreatedAt:  f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  f.UpdatedAt.Format(time.RFC3339),
	}
}

// parseTimestamp 解析可选的RFC3339时间戳，空串返回零值
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperrors.New(apperrors.ErrCodeInvalidParams, "时间格式应为RFC3339: "+s)
	}
	return t, nil
}
