// Package softdelete 定义软删除数据访问契约
//
// 设计说明：
// 1. 软删除不是各实体继承一个基类，而是一个组合进各仓储接口的数据访问契约
// 2. 删除=翻转is_deleted标志（内容不动），恢复=翻转回来，物理删除不对外暴露
// 3. 两个操作都是幂等的：对已删除实体再次删除、对未删除实体再次恢复，
//    都是成功的空操作，不返回错误
package softdelete

import "context"

// Repository 软删除/恢复契约（组合进各实体的Repository接口）
type Repository interface {
	// SoftDelete 软删除（幂等：已删除时为空操作）
	SoftDelete(ctx context.Context, id uint) error

	// Restore 恢复（幂等：未删除时为空操作）
	Restore(ctx context.Context, id uint) error
}
