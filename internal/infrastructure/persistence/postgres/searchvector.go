package postgres

import (
	"gorm.io/gorm"
)

// 加权搜索向量
// 设计说明：
// 1. 每个可搜索实体一列tsvector，主字段权重A、描述性字段权重D——
//    各类型使用同一套权重标度，rank跨类型可比
// 2. 向量在每次Create/Update的同一事务内用UPDATE ... SET search_vector=...
//    同步重算；写入和向量重算要么同时生效、要么同时回滚，
//    不依赖触发器，行为对代码阅读者完全显式
// 3. 统一用'english'配置，与查询侧的plainto_tsquery('english', ...)对应

const (
	authorVectorExpr = `setweight(to_tsvector('english', coalesce(first_name, '') || ' ' || coalesce(last_name, '')), 'A') ||
		setweight(to_tsvector('english', coalesce(bio, '')), 'D')`

	publisherVectorExpr = `setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
		setweight(to_tsvector('english', coalesce(address, '')), 'D')`

	categoryVectorExpr = `setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
		setweight(to_tsvector('english', coalesce(description, '')), 'D')`

	bookVectorExpr = `setweight(to_tsvector('english', coalesce(title, '')), 'A') ||
		setweight(to_tsvector('english', coalesce(description, '')), 'D')`

	commentVectorExpr = `setweight(to_tsvector('english', coalesce(content, '')), 'D')`
)

// refreshVector 重算一行的搜索向量（必须在写事务内调用）
// whereSQL对分区表要带上created_at条件，让分区裁剪生效
func refreshVector(tx *gorm.DB, table, vectorExpr, whereSQL string, args ...interface{}) error {
	return tx.Exec(
		"UPDATE "+table+" SET search_vector = "+vectorExpr+" WHERE "+whereSQL,
		args...,
	).Error
}
