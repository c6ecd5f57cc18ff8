package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bookRepository 图书仓储的PostgreSQL实现
// 设计说明：
// 1. 所有读写都面向逻辑表books，分区裁剪由PostgreSQL根据created_at条件完成
// 2. created_at是分区键：Update的SET子句永远不包含它，
//    WHERE子句带上它让更新只扫描一个分区
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书（同事务内重算搜索向量）
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookModel(b)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := refreshVector(tx, "books", bookVectorExpr,
			"id = ? AND created_at = ?", m.ID, m.CreatedAt); err != nil {
			return err
		}
		b.ID = m.ID
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}
	return nil
}

// FindByID 根据ID查找可见图书（面向逻辑表，分区透明）
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var m BookModel
	err := dbFrom(ctx, r.db).WithContext(ctx).Scopes(Visible).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&m), nil
}

// Update 更新图书
// created_at作为WHERE条件（分区裁剪）但绝不出现在SET子句
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&BookModel{}).
			Where("id = ? AND created_at = ?", b.ID, b.CreatedAt).
			Updates(map[string]interface{}{
				"title":            b.Title,
				"description":      b.Description,
				"price":            b.Price,
				"publication_year": b.PublicationYear,
				"available":        b.Available,
				"publisher_id":     b.PublisherID,
				"category_id":      b.CategoryID,
				"updated_at":       b.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return book.ErrBookNotFound
		}
		return refreshVector(tx, "books", bookVectorExpr,
			"id = ? AND created_at = ?", b.ID, b.CreatedAt)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "更新图书失败")
	}
	return nil
}

// List 分页查询可见图书（支持作者/出版社/分类/上架状态过滤）
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	db := dbFrom(ctx, r.db).WithContext(ctx).Model(&BookModel{}).Scopes(Visible)

	if params.AuthorID != 0 {
		db = db.Where("author_id = ?", params.AuthorID)
	}
	if params.Publisher != 0 {
		db = db.Where("publisher_id = ?", params.Publisher)
	}
	if params.Category != 0 {
		db = db.Where("category_id = ?", params.Category)
	}
	if params.Available != nil {
		db = db.Where("available = ?", *params.Available)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计图书数量失败")
	}

	var models []BookModel
	offset := (params.Page - 1) * params.PageSize
	err := db.Order("created_at DESC, id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

func (r *bookRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDeleteRow(ctx, dbFrom(ctx, r.db), &BookModel{}, id, book.ErrBookNotFound)
}

func (r *bookRepository) Restore(ctx context.Context, id uint) error {
	return restoreRow(ctx, dbFrom(ctx, r.db), &BookModel{}, id, book.ErrBookNotFound)
}

// =========================================
// FormatRepository 图书版本仓储实现
// =========================================

type formatRepository struct {
	db *gorm.DB
}

// NewFormatRepository 创建图书版本仓储
func NewFormatRepository(db *gorm.DB) book.FormatRepository {
	return &formatRepository{db: db}
}

// Create 创建图书版本
// (book_id, format_type)在可见记录间唯一。分区表的全局唯一索引
// 必须包含分区键，表达不了这个约束，所以在写事务内显式校验
func (r *formatRepository) Create(ctx context.Context, f *book.Format) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&BookFormatModel{}).Scopes(Visible).
			Where("book_id = ? AND format_type = ?", f.BookID, string(f.FormatType)).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return book.ErrFormatDuplicate
		}

		m := toFormatModel(f)
		if err := tx.Create(m).Error; err != nil {
			if isDuplicateError(err) {
				return book.ErrFormatDuplicate
			}
			return err
		}
		f.ID = m.ID
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "创建图书版本失败")
	}
	return nil
}

func (r *formatRepository) FindByID(ctx context.Context, id uint) (*book.Format, error) {
	var m BookFormatModel
	err := dbFrom(ctx, r.db).WithContext(ctx).Scopes(Visible).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrFormatNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书版本失败")
	}
	return toFormatEntity(&m), nil
}

func (r *formatRepository) Update(ctx context.Context, f *book.Format) error {
	res := dbFrom(ctx, r.db).WithContext(ctx).Model(&BookFormatModel{}).
		Where("id = ? AND created_at = ?", f.ID, f.CreatedAt).
		Updates(map[string]interface{}{
			"price":      f.Price,
			"stock":      f.Stock,
			"updated_at": f.UpdatedAt,
		})
	if res.Error != nil {
		return apperrors.Wrap(res.Error, "更新图书版本失败")
	}
	if res.RowsAffected == 0 {
		return book.ErrFormatNotFound
	}
	return nil
}

// ListByBook 查询某图书的全部可见版本
func (r *formatRepository) ListByBook(ctx context.Context, bookID uint) ([]*book.Format, error) {
	var models []BookFormatModel
	err := dbFrom(ctx, r.db).WithContext(ctx).Scopes(Visible).
		Where("book_id = ?", bookID).
		Order("format_type ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书版本列表失败")
	}

	formats := make([]*book.Format, len(models))
	for i := range models {
		formats[i] = toFormatEntity(&models[i])
	}
	return formats, nil
}

func (r *formatRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDeleteRow(ctx, dbFrom(ctx, r.db), &BookFormatModel{}, id, book.ErrFormatNotFound)
}

func (r *formatRepository) Restore(ctx context.Context, id uint) error {
	return restoreRow(ctx, dbFrom(ctx, r.db), &BookFormatModel{}, id, book.ErrFormatNotFound)
}

// =========================================
// 映射函数
// =========================================

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		Description:     b.Description,
		Price:           b.Price,
		PublicationYear: b.PublicationYear,
		Available:       b.Available,
		AuthorID:        b.AuthorID,
		PublisherID:     b.PublisherID,
		CategoryID:      b.CategoryID,
		IsDeleted:       b.IsDeleted,
		DeletedAt:       b.DeletedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Price:           m.Price,
		PublicationYear: m.PublicationYear,
		Available:       m.Available,
		AuthorID:        m.AuthorID,
		PublisherID:     m.PublisherID,
		CategoryID:      m.CategoryID,
		IsDeleted:       m.IsDeleted,
		DeletedAt:       m.DeletedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toFormatModel(f *book.Format) *BookFormatModel {
	return &BookFormatModel{
		ID:         f.ID,
		BookID:     f.BookID,
		FormatType: string(f.FormatType),
		Price:      f.Price,
		Stock:      f.Stock,
		IsDeleted:  f.IsDeleted,
		DeletedAt:  f.DeletedAt,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func toFormatEntity(m *BookFormatModel) *book.Format {
	return &book.Format{
		ID:         m.ID,
		BookID:     m.BookID,
		FormatType: book.FormatType(m.FormatType),
		Price:      m.Price,
		Stock:      m.Stock,
		IsDeleted:  m.IsDeleted,
		DeletedAt:  m.DeletedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
