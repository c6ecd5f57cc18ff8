package dto

// CreateCommentRequest HTTP发表评论请求
// parent_id非null时为回复，父评论必须属于同一本书
type CreateCommentRequest struct {
	BookID   uint   `json:"book_id" binding:"required" example:"1"`
	ParentID *uint  `json:"parent_id"`
	Content  string `json:"content" binding:"required,max=5000"`
}

// UpdateCommentRequest HTTP修改评论请求
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// ListCommentsQuery HTTP评论列表查询参数
type ListCommentsQuery struct {
	PageQuery
	TopLevel bool `form:"top_level"` // 只返回顶层评论
}
