package dto

// CreateAuthorRequest HTTP创建作者请求
type CreateAuthorRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=255" example:"William"`
	LastName    string `json:"last_name" binding:"required,max=255" example:"Kennedy"`
	Email       string `json:"email" binding:"omitempty,email,max=100"`
	Bio         string `json:"bio" binding:"max=5000"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02" example:"1960-03-15"`
	DateOfDeath string `json:"date_of_death" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateAuthorRequest HTTP更新作者请求（空字段保持不变）
type UpdateAuthorRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,max=255"`
	LastName  string `json:"last_name" binding:"omitempty,max=255"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Bio       string `json:"bio" binding:"omitempty,max=5000"`
}
