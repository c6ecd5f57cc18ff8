package comment

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/comment"
)

// UseCase 评论用例
type UseCase struct {
	service comment.Service
	limits  application.PageLimits
}

// NewUseCase 创建评论用例
func NewUseCase(service comment.Service, limits application.PageLimits) *UseCase {
	return &UseCase{service: service, limits: limits}
}

// CreateCommentRequest 发表评论请求
// ParentID非nil时为回复，父评论必须属于同一本书
type CreateCommentRequest struct {
	BookID   uint
	UserID   uint // 从认证上下文注入，不信任请求体
	ParentID *uint
	Content  string
}

// CommentResponse 评论响应
type CommentResponse struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	UserID    uint   `json:"user_id"`
	ParentID  *uint  `json:"parent_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListCommentsRequest 评论列表查询请求
type ListCommentsRequest struct {
	BookID   uint
	Page     int
	PageSize int
	TopLevel bool
}

// ListCommentsResponse 评论列表响应
type ListCommentsResponse struct {
	List       []CommentResponse `json:"list"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// Create 发表评论或回复
func (uc *UseCase) Create(ctx context.Context, req CreateCommentRequest) (*CommentResponse, error) {
	c, err := uc.service.CreateComment(ctx, comment.NewComment(
		req.BookID, req.UserID, req.ParentID, req.Content))
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Get 获取评论详情
func (uc *UseCase) Get(ctx context.Context, id uint) (*CommentResponse, error) {
	c, err := uc.service.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Update 修改评论内容（仅作者本人）
func (uc *UseCase) Update(ctx context.Context, id, userID uint, content string) (*CommentResponse, error) {
	c, err := uc.service.UpdateComment(ctx, id, userID, content)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Delete 软删除评论（幂等；不影响回复的可见性）
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.service.DeleteComment(ctx, id)
}

// Restore 恢复评论（幂等）
func (uc *UseCase) Restore(ctx context.Context, id uint) error {
	return uc.service.RestoreComment(ctx, id)
}

// ListByBook 分页查询某图书的可见评论
func (uc *UseCase) ListByBook(ctx context.Context, req ListCommentsRequest) (*ListCommentsResponse, error) {
	page, pageSize := uc.limits.Normalize(req.Page, req.PageSize)

	comments, total, err := uc.service.ListByBook(ctx, req.BookID, comment.ListParams{
		Page:     page,
		PageSize: pageSize,
		TopLevel: req.TopLevel,
	})
	if err != nil {
		return nil, err
	}

	list := make([]CommentResponse, len(comments))
	for i, c := range comments {
		list[i] = *toResponse(c)
	}

	return &ListCommentsResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: application.TotalPages(total, pageSize),
	}, nil
}

// Replies 查询某评论的直接可见回复
func (uc *UseCase) Replies(ctx context.Context, parentID uint) ([]CommentResponse, error) {
	replies, err := uc.service.Replies(ctx, parentID)
	if err != nil {
		return nil, err
	}

	list := make([]CommentResponse, len(replies))
	for i, c := range replies {
		list[i] = *toResponse(c)
	}
	return list, nil
}

func toResponse(c *comment.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		BookID:    c.BookID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
