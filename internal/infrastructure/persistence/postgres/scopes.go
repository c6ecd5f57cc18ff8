package postgres

import (
	"gorm.io/gorm"
)

// Visible 可见性谓词：排除软删除记录
// 设计说明：显式scope而不是全局默认过滤——每条读路径自己决定
// 是否拼接（FindAnyByID这类例外路径不拼）；哪里过滤了可见性
// 在调用点一目了然
func Visible(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = FALSE")
}
