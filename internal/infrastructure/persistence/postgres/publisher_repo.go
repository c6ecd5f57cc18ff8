package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// publisherRepository 出版社仓储的PostgreSQL实现
type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) publisher.Repository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(ctx context.Context, p *publisher.Publisher) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toPublisherModel(p)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := refreshVector(tx, "publishers", publisherVectorExpr, "id = ?", m.ID); err != nil {
			return err
		}
		p.ID = m.ID
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "创建出版社失败")
	}
	return nil
}

func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	var m PublisherModel
	err := dbFrom(ctx, r.db).WithContext(ctx).Scopes(Visible).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "查询出版社失败")
	}
	return toPublisherEntity(&m), nil
}

func (r *publisherRepository) Update(ctx context.Context, p *publisher.Publisher) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&PublisherModel{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"name":       p.Name,
			"address":    p.Address,
			"email":      p.Email,
			"phone":      p.Phone,
			"website":    p.Website,
			"updated_at": p.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return publisher.ErrPublisherNotFound
		}
		return refreshVector(tx, "publishers", publisherVectorExpr, "id = ?", p.ID)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "更新出版社失败")
	}
	return nil
}

func (r *publisherRepository) List(ctx context.Context, params publisher.ListParams) ([]*publisher.Publisher, int64, error) {
	db := dbFrom(ctx, r.db).WithContext(ctx).Model(&PublisherModel{}).Scopes(Visible)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计出版社数量失败")
	}

	var models []PublisherModel
	offset := (params.Page - 1) * params.PageSize
	err := db.Order("created_at DESC, id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询出版社列表失败")
	}

	publishers := make([]*publisher.Publisher, len(models))
	for i := range models {
		publishers[i] = toPublisherEntity(&models[i])
	}
	return publishers, total, nil
}

func (r *publisherRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDeleteRow(ctx, dbFrom(ctx, r.db), &PublisherModel{}, id, publisher.ErrPublisherNotFound)
}

func (r *publisherRepository) Restore(ctx context.Context, id uint) error {
	return restoreRow(ctx, dbFrom(ctx, r.db), &PublisherModel{}, id, publisher.ErrPublisherNotFound)
}

func toPublisherModel(p *publisher.Publisher) *PublisherModel {
	return &PublisherModel{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Email:     p.Email,
		Phone:     p.Phone,
		Website:   p.Website,
		IsDeleted: p.IsDeleted,
		DeletedAt: p.DeletedAt,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPublisherEntity(m *PublisherModel) *publisher.Publisher {
	return &publisher.Publisher{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		Email:     m.Email,
		Phone:     m.Phone,
		Website:   m.Website,
		IsDeleted: m.IsDeleted,
		DeletedAt: m.DeletedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
