package book

import (
	"context"
	"strings"
)

// ReferenceChecker 校验被引用实体存在且可见
// 设计说明：跨聚合的存在性校验通过窄接口注入，
// 避免图书领域服务直接依赖其他聚合的仓储实现
type ReferenceChecker interface {
	AuthorExists(ctx context.Context, id uint) error
	PublisherExists(ctx context.Context, id uint) error
	CategoryExists(ctx context.Context, id uint) error
}

// Service 图书领域服务接口
type Service interface {
	// CreateBook 创建图书
	// 业务规则：
	// - 书名必填，价格>0
	// - created_at年份必须落在配置的分区范围内（越界返回PartitionRangeError）
	// - 引用的作者/出版社/分类必须存在且可见
	CreateBook(ctx context.Context, b *Book) (*Book, error)

	// GetBook 根据ID获取可见图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书（created_at永不修改，分区归属不变）
	UpdateBook(ctx context.Context, id uint, title, description string, publicationYear int, price *int64, available *bool) (*Book, error)

	// DeleteBook 软删除（幂等，不级联到版本和评论）
	DeleteBook(ctx context.Context, id uint) error

	// RestoreBook 恢复（幂等）
	RestoreBook(ctx context.Context, id uint) error

	// ListBooks 分页查询可见图书（支持作者/出版社/分类/上架状态过滤）
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// AddFormat 为图书添加版本
	// 业务规则：版本类型合法且同书唯一；分区范围校验与图书一致
	AddFormat(ctx context.Context, f *Format) (*Format, error)

	// GetFormat 根据ID获取可见版本
	GetFormat(ctx context.Context, id uint) (*Format, error)

	// UpdateFormat 更新版本价格与库存
	UpdateFormat(ctx context.Context, id uint, price int64, stock int) (*Format, error)

	// DeleteFormat 软删除版本（幂等）
	DeleteFormat(ctx context.Context, id uint) error

	// RestoreFormat 恢复版本（幂等）
	RestoreFormat(ctx context.Context, id uint) error

	// ListFormats 查询图书的全部可见版本
	ListFormats(ctx context.Context, bookID uint) ([]*Format, error)
}

type service struct {
	repo       Repository
	formatRepo FormatRepository
	refs       ReferenceChecker
	router     *PartitionRouter
}

// NewService 创建图书领域服务
func NewService(repo Repository, formatRepo FormatRepository, refs ReferenceChecker, router *PartitionRouter) Service {
	return &service{
		repo:       repo,
		formatRepo: formatRepo,
		refs:       refs,
		router:     router,
	}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) (*Book, error) {
	// 1. 基本字段校验
	if strings.TrimSpace(b.Title) == "" {
		return nil, ErrTitleRequired
	}
	if b.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	// 2. 分区范围校验（写入时显式路由，越界拒绝）
	if err := s.router.Validate(b.CreatedAt); err != nil {
		return nil, err
	}

	// 3. 引用完整性校验
	if err := s.refs.AuthorExists(ctx, b.AuthorID); err != nil {
		return nil, err
	}
	if b.PublisherID != nil {
		if err := s.refs.PublisherExists(ctx, *b.PublisherID); err != nil {
			return nil, err
		}
	}
	if b.CategoryID != nil {
		if err := s.refs.CategoryExists(ctx, *b.CategoryID); err != nil {
			return nil, err
		}
	}

	// 4. 持久化（仓储在同一事务内写入分区并重算搜索向量）
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, title, description string, publicationYear int, price *int64, available *bool) (*Book, error) {
	// 1. 查询可见图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 更新字段（CreatedAt不动，分区归属不变）
	b.UpdateInfo(title, description, publicationYear)
	if price != nil {
		if err := b.UpdatePrice(*price); err != nil {
			return nil, err
		}
	}
	if available != nil {
		b.SetAvailable(*available)
	}

	// 3. 持久化（搜索向量同步重算）
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 软删除图书
// 不级联：版本和评论各自保留自己的可见性标志
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// RestoreBook 恢复图书
func (s *service) RestoreBook(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// =========================================
// 图书版本
// =========================================

// AddFormat 添加图书版本
func (s *service) AddFormat(ctx context.Context, f *Format) (*Format, error) {
	// 1. 版本类型与价格校验
	if !f.FormatType.IsValid() {
		return nil, ErrInvalidFormatType
	}
	if f.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if f.Stock < 0 {
		return nil, ErrInvalidStock
	}

	// 2. 分区范围校验（与图书同一套路由规则）
	if err := s.router.Validate(f.CreatedAt); err != nil {
		return nil, err
	}

	// 3. 所属图书必须存在且可见
	if _, err := s.repo.FindByID(ctx, f.BookID); err != nil {
		return nil, err
	}

	// 4. 持久化（(book_id, format_type)唯一性由数据库保证，
	//    仓储把唯一冲突转换为ErrFormatDuplicate）
	if err := s.formatRepo.Create(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

// GetFormat 根据ID获取版本
func (s *service) GetFormat(ctx context.Context, id uint) (*Format, error) {
	return s.formatRepo.FindByID(ctx, id)
}

// UpdateFormat 更新版本价格与库存
func (s *service) UpdateFormat(ctx context.Context, id uint, price int64, stock int) (*Format, error) {
	f, err := s.formatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := f.UpdatePricing(price, stock); err != nil {
		return nil, err
	}

	if err := s.formatRepo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFormat 软删除版本
func (s *service) DeleteFormat(ctx context.Context, id uint) error {
	return s.formatRepo.SoftDelete(ctx, id)
}

// RestoreFormat 恢复版本
func (s *service) RestoreFormat(ctx context.Context, id uint) error {
	return s.formatRepo.Restore(ctx, id)
}

// ListFormats 查询图书的全部可见版本
func (s *service) ListFormats(ctx context.Context, bookID uint) ([]*Format, error) {
	// 图书本身必须可见（图书被软删除后其版本不再通过此入口暴露）
	if _, err := s.repo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.formatRepo.ListByBook(ctx, bookID)
}
