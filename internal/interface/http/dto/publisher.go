package dto

// CreatePublisherRequest HTTP创建出版社请求
type CreatePublisherRequest struct {
	Name    string `json:"name" binding:"required,max=200" example:"人民邮电出版社"`
	Address string `json:"address" binding:"max=500"`
	Email   string `json:"email" binding:"omitempty,email,max=100"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Website string `json:"website" binding:"omitempty,url,max=500"`
}

// UpdatePublisherRequest HTTP更新出版社请求（空字段保持不变）
type UpdatePublisherRequest struct {
	Name    string `json:"name" binding:"omitempty,max=200"`
	Address string `json:"address" binding:"omitempty,max=500"`
	Email   string `json:"email" binding:"omitempty,email,max=100"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Website string `json:"website" binding:"omitempty,url,max=500"`
}
