package comment

import (
	"time"
)

// Comment 评论实体（聚合根）
// 设计说明：
// 1. ParentID自引用形成回复树（深度不限）；父评论必须属于同一本书
// 2. 可见性只看自己的标志：父评论被软删除后，回复依然独立可见
type Comment struct {
	ID        uint
	BookID    uint
	UserID    uint
	ParentID  *uint
	Content   string
	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment 创建新评论（工厂方法）
func NewComment(bookID, userID uint, parentID *uint, content string) *Comment {
	now := time.Now()
	return &Comment{
		BookID:    bookID,
		UserID:    userID,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateContent 修改评论内容
func (c *Comment) UpdateContent(content string) {
	c.Content = content
	c.UpdatedAt = time.Now()
}

// IsReply 是否为回复
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
