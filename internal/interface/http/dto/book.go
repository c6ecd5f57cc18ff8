package dto

// CreateBookRequest HTTP创建图书请求
// created_at可选（RFC3339），用于历史数据回填；
// 年份必须落在配置的分区范围内，越界返回40006
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required,max=500" example:"Go语言实战"`
	Description     string `json:"description" binding:"max=5000"`
	Price           int64  `json:"price" binding:"required,min=1,max=99999999" example:"5900"` // 价格(分)
	PublicationYear int    `json:"publication_year" binding:"omitempty,min=1000,max=2100" example:"2024"`
	Available       *bool  `json:"available"`
	AuthorID        uint   `json:"author_id" binding:"required" example:"1"`
	PublisherID     *uint  `json:"publisher_id"`
	CategoryID      *uint  `json:"category_id"`
	CreatedAt       string `json:"created_at" binding:"omitempty" example:"2024-06-01T10:30:00Z"`
}

// UpdateBookRequest HTTP更新图书请求（空字段保持不变，created_at不可修改）
type UpdateBookRequest struct {
	Title           string `json:"title" binding:"omitempty,max=500"`
	Description     string `json:"description" binding:"omitempty,max=5000"`
	PublicationYear int    `json:"publication_year" binding:"omitempty,min=1000,max=2100"`
	Price           *int64 `json:"price" binding:"omitempty,min=1,max=99999999"`
	Available       *bool  `json:"available"`
}

// ListBooksQuery HTTP图书列表查询参数
type ListBooksQuery struct {
	PageQuery
	AuthorID  uint  `form:"author_id"`
	Publisher uint  `form:"publisher_id"`
	Category  uint  `form:"category_id"`
	Available *bool `form:"available"`
}

// AddFormatRequest HTTP添加图书版本请求
type AddFormatRequest struct {
	FormatType string `json:"format_type" binding:"required,oneof=PHYSICAL PDF EPUB AUDIO" example:"EPUB"`
	Price      int64  `json:"price" binding:"required,min=1,max=99999999" example:"2900"`
	Stock      int    `json:"stock" binding:"min=0" example:"100"`
	CreatedAt  string `json:"created_at" binding:"omitempty"`
}

// UpdateFormatRequest HTTP更新图书版本请求
type UpdateFormatRequest struct {
	Price int64 `json:"price" binding:"required,min=1,max=99999999"`
	Stock int   `json:"stock" binding:"min=0"`
}
