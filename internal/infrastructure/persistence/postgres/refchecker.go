package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ReferenceChecker 跨聚合引用存在性校验
// 实现book.ReferenceChecker和comment.BookChecker：
// 聚合之间不直接持有对方的仓储，只通过窄接口做存在性检查。
// 存在性一律以"可见"为准（分类没有软删除，只查存在）
type ReferenceChecker struct {
	db *gorm.DB
}

// NewReferenceChecker 创建引用校验器
func NewReferenceChecker(db *gorm.DB) *ReferenceChecker {
	return &ReferenceChecker{db: db}
}

// AuthorExists 作者必须存在且可见
func (c *ReferenceChecker) AuthorExists(ctx context.Context, id uint) error {
	return c.checkVisible(ctx, &AuthorModel{}, id, author.ErrAuthorNotFound)
}

// PublisherExists 出版社必须存在且可见
func (c *ReferenceChecker) PublisherExists(ctx context.Context, id uint) error {
	return c.checkVisible(ctx, &PublisherModel{}, id, publisher.ErrPublisherNotFound)
}

// CategoryExists 分类必须存在
func (c *ReferenceChecker) CategoryExists(ctx context.Context, id uint) error {
	var count int64
	err := dbFrom(ctx, c.db).WithContext(ctx).Model(&CategoryModel{}).
		Where("id = ?", id).Count(&count).Error
	if err != nil {
		return apperrors.Wrap(err, "查询分类失败")
	}
	if count == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// BookExists 图书必须存在且可见
func (c *ReferenceChecker) BookExists(ctx context.Context, id uint) error {
	return c.checkVisible(ctx, &BookModel{}, id, book.ErrBookNotFound)
}

func (c *ReferenceChecker) checkVisible(ctx context.Context, model interface{}, id uint, notFound error) error {
	var count int64
	err := dbFrom(ctx, c.db).WithContext(ctx).Model(model).Scopes(Visible).
		Where("id = ?", id).Count(&count).Error
	if err != nil {
		return apperrors.Wrap(err, "查询引用记录失败")
	}
	if count == 0 {
		return notFound
	}
	return nil
}
