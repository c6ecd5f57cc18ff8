package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/comment"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// commentRepository 评论仓储的PostgreSQL实现
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓储
func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toCommentModel(c)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := refreshVector(tx, "comments", commentVectorExpr, "id = ?", m.ID); err != nil {
			return err
		}
		c.ID = m.ID
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "创建评论失败")
	}
	return nil
}

// FindByID 根据ID查找可见评论
func (r *commentRepository) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var m CommentModel
	err := dbFrom(ctx, r.db).WithContext(ctx).Scopes(Visible).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}
	return toCommentEntity(&m), nil
}

// FindAnyByID 不过滤可见性的查找
// 用于父评论归属校验：父评论被软删除后，归属规则依然成立
func (r *commentRepository) FindAnyByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var m CommentModel
	err := dbFrom(ctx, r.db).WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}
	return toCommentEntity(&m), nil
}

func (r *commentRepository) Update(ctx context.Context, c *comment.Comment) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&CommentModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
			"content":    c.Content,
			"updated_at": c.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return comment.ErrCommentNotFound
		}
		return refreshVector(tx, "comments", commentVectorExpr, "id = ?", c.ID)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "更新评论失败")
	}
	return nil
}

// ListByBook 分页查询某图书的可见评论（按created_at降序）
func (r *commentRepository) ListByBook(ctx context.Context, bookID uint, params comment.ListParams) ([]*comment.Comment, int64, error) {
	db := dbFrom(ctx, r.db).WithContext(ctx).Model(&CommentModel{}).Scopes(Visible).
		Where("book_id = ?", bookID)
	if params.TopLevel {
		db = db.Where("parent_id IS NULL")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计评论数量失败")
	}

	var models []CommentModel
	offset := (params.Page - 1) * params.PageSize
	err := db.Order("created_at DESC, id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询评论列表失败")
	}

	comments := make([]*comment.Comment, len(models))
	for i := range models {
		comments[i] = toCommentEntity(&models[i])
	}
	return comments, total, nil
}

// Replies 查询某评论的直接可见回复（按created_at升序）
// 只看回复自身的可见性：父评论是否被软删除不影响回复的可见性
func (r *commentRepository) Replies(ctx context.Context, parentID uint) ([]*comment.Comment, error) {
	var models []CommentModel
	err := dbFrom(ctx, r.db).WithContext(ctx).Scopes(Visible).
		Where("parent_id = ?", parentID).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询回复失败")
	}

	comments := make([]*comment.Comment, len(models))
	for i := range models {
		comments[i] = toCommentEntity(&models[i])
	}
	return comments, nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDeleteRow(ctx, dbFrom(ctx, r.db), &CommentModel{}, id, comment.ErrCommentNotFound)
}

func (r *commentRepository) Restore(ctx context.Context, id uint) error {
	return restoreRow(ctx, dbFrom(ctx, r.db), &CommentModel{}, id, comment.ErrCommentNotFound)
}

func toCommentModel(c *comment.Comment) *CommentModel {
	return &CommentModel{
		ID:        c.ID,
		BookID:    c.BookID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		IsDeleted: c.IsDeleted,
		DeletedAt: c.DeletedAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCommentEntity(m *CommentModel) *comment.Comment {
	return &comment.Comment{
		ID:        m.ID,
		BookID:    m.BookID,
		UserID:    m.UserID,
		ParentID:  m.ParentID,
		Content:   m.Content,
		IsDeleted: m.IsDeleted,
		DeletedAt: m.DeletedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
