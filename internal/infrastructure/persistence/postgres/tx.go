package postgres

import (
	"context"

	"gorm.io/gorm"
)

// 事务管理
// 设计说明：事务句柄通过context传递，仓储方法用dbFrom()取句柄——
// 在事务内取到*gorm.DB的事务实例，事务外取到连接池。
// 应用层跨仓储的原子操作通过TxManager.Transaction包裹。

type txKey struct{}

// WithTx 把事务句柄注入context
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFrom 从context取事务句柄，没有则返回默认连接
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

// TxManager 事务管理器
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 在单个数据库事务内执行fn
// fn返回error时整个事务回滚
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
