package user

import (
	"context"
)

// Repository 用户仓储接口
// 邮箱唯一性由数据库UNIQUE索引保证，实现层把唯一冲突转换为ErrEmailDuplicate
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
