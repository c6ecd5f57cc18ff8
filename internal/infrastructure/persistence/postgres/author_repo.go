package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// authorRepository 作者仓储的PostgreSQL实现
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
// 实体写入和搜索向量重算在同一事务内完成
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toAuthorModel(a)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := refreshVector(tx, "authors", authorVectorExpr, "id = ?", m.ID); err != nil {
			return err
		}
		a.ID = m.ID
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}
	return nil
}

// FindByID 根据ID查找可见作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var m AuthorModel
	err := dbFrom(ctx, r.db).WithContext(ctx).Scopes(Visible).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&m), nil
}

// Update 更新作者（同事务内重算搜索向量）
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&AuthorModel{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
			"first_name":    a.FirstName,
			"last_name":     a.LastName,
			"email":         a.Email,
			"date_of_birth": a.DateOfBirth,
			"date_of_death": a.DateOfDeath,
			"bio":           a.Bio,
			"updated_at":    a.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return author.ErrAuthorNotFound
		}
		return refreshVector(tx, "authors", authorVectorExpr, "id = ?", a.ID)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "更新作者失败")
	}
	return nil
}

// List 分页查询可见作者
func (r *authorRepository) List(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	db := dbFrom(ctx, r.db).WithContext(ctx).Model(&AuthorModel{}).Scopes(Visible)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计作者数量失败")
	}

	var models []AuthorModel
	offset := (params.Page - 1) * params.PageSize
	err := db.Order("created_at DESC, id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, total, nil
}

// SoftDelete 幂等软删除
func (r *authorRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDeleteRow(ctx, dbFrom(ctx, r.db), &AuthorModel{}, id, author.ErrAuthorNotFound)
}

// Restore 幂等恢复
func (r *authorRepository) Restore(ctx context.Context, id uint) error {
	return restoreRow(ctx, dbFrom(ctx, r.db), &AuthorModel{}, id, author.ErrAuthorNotFound)
}

// toAuthorModel 领域实体转数据模型
func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		DateOfBirth: a.DateOfBirth,
		DateOfDeath: a.DateOfDeath,
		Bio:         a.Bio,
		IsDeleted:   a.IsDeleted,
		DeletedAt:   a.DeletedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// toAuthorEntity 数据模型转领域实体
func toAuthorEntity(m *AuthorModel) *author.Author {
	return &author.Author{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		DateOfBirth: m.DateOfBirth,
		DateOfDeath: m.DateOfDeath,
		Bio:         m.Bio,
		IsDeleted:   m.IsDeleted,
		DeletedAt:   m.DeletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
