package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// isDuplicateError 判断是否为唯一约束冲突
// GORM开启TranslateError后会翻译为ErrDuplicatedKey；
// 原生SQL路径上直接检查SQLSTATE 23505
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// softDeleteRow 幂等软删除：翻转is_deleted标志并记录deleted_at
// 语义：
// 1. 可见记录 → 标记删除
// 2. 已删除记录 → 无操作，成功返回（幂等）
// 3. 记录完全不存在 → notFound
func softDeleteRow(ctx context.Context, db *gorm.DB, model interface{}, id uint, notFound error) error {
	res := db.WithContext(ctx).Model(model).
		Where("id = ? AND is_deleted = FALSE", id).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": time.Now(),
		})
	if res.Error != nil {
		return apperrors.Wrap(res.Error, "软删除失败")
	}
	if res.RowsAffected == 0 {
		return ensureRowExists(ctx, db, model, id, notFound)
	}
	return nil
}

// restoreRow 幂等恢复：清除is_deleted标志和deleted_at
// 已可见的记录恢复是无操作；完全不存在返回notFound
func restoreRow(ctx context.Context, db *gorm.DB, model interface{}, id uint, notFound error) error {
	res := db.WithContext(ctx).Model(model).
		Where("id = ? AND is_deleted = TRUE", id).
		Updates(map[string]interface{}{
			"is_deleted": false,
			"deleted_at": nil,
		})
	if res.Error != nil {
		return apperrors.Wrap(res.Error, "恢复失败")
	}
	if res.RowsAffected == 0 {
		return ensureRowExists(ctx, db, model, id, notFound)
	}
	return nil
}

// ensureRowExists 区分"已处于目标状态"和"记录不存在"
func ensureRowExists(ctx context.Context, db *gorm.DB, model interface{}, id uint, notFound error) error {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(err, "查询记录失败")
	}
	if count == 0 {
		return notFound
	}
	return nil
}
