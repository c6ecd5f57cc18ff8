package dto

// SearchQuery HTTP搜索查询参数
// type为空走全局搜索（book/author/publisher/category跨类型合并）；
// q为空白串时返回全部可见记录（不排名）
type SearchQuery struct {
	PageQuery
	Q    string `form:"q" binding:"max=200" example:"golang"`
	Type string `form:"type" binding:"omitempty,oneof=book author publisher category comment"`
}
