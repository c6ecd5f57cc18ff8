package dto

// CreateCategoryRequest HTTP创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=200" example:"计算机"`
	Description string `json:"description" binding:"max=2000"`
	ParentID    *uint  `json:"parent_id"`
}

// UpdateCategoryRequest HTTP更新分类请求
// MoveParent=true时调整父分类（ParentID为null表示提升为顶级）
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"omitempty,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	ParentID    *uint  `json:"parent_id"`
	MoveParent  bool   `json:"move_parent"`
}
