package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/category"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// categoryRepository 分类仓储的PostgreSQL实现
// 分类没有软删除，读路径不拼可见性谓词
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toCategoryModel(c)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := refreshVector(tx, "categories", categoryVectorExpr, "id = ?", m.ID); err != nil {
			return err
		}
		c.ID = m.ID
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "创建分类失败")
	}
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var m CategoryModel
	err := dbFrom(ctx, r.db).WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toCategoryEntity(&m), nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&CategoryModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
			"parent_id":   c.ParentID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return category.ErrCategoryNotFound
		}
		return refreshVector(tx, "categories", categoryVectorExpr, "id = ?", c.ID)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "更新分类失败")
	}
	return nil
}

// List 分页查询分类（按name排序）
func (r *categoryRepository) List(ctx context.Context, params category.ListParams) ([]*category.Category, int64, error) {
	db := dbFrom(ctx, r.db).WithContext(ctx).Model(&CategoryModel{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计分类数量失败")
	}

	var models []CategoryModel
	offset := (params.Page - 1) * params.PageSize
	err := db.Order("name ASC, id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, total, nil
}

// Children 查询直接子分类
func (r *categoryRepository) Children(ctx context.Context, parentID uint) ([]*category.Category, error) {
	var models []CategoryModel
	err := dbFrom(ctx, r.db).WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("name ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询子分类失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
	}
}

func toCategoryEntity(m *CategoryModel) *category.Category {
	return &category.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ParentID:    m.ParentID,
	}
}
