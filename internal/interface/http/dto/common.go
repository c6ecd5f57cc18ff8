package dto

// PageQuery 通用分页查询参数
// 越界值由应用层规范化（默认20条/页，上限100条/页）
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1" example:"20"`
}
