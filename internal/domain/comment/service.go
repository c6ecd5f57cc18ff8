package comment

import (
	"context"
	"strings"
)

// BookChecker 校验图书存在且可见（窄接口，避免依赖图书聚合实现）
type BookChecker interface {
	BookExists(ctx context.Context, id uint) error
}

// Service 评论领域服务接口
type Service interface {
	// CreateComment 发表评论或回复
	// 业务规则：
	// - 内容必填
	// - 图书必须存在且可见
	// - 指定父评论时，父评论必须属于同一本书（否则ValidationError）
	CreateComment(ctx context.Context, c *Comment) (*Comment, error)

	// GetComment 根据ID获取可见评论
	GetComment(ctx context.Context, id uint) (*Comment, error)

	// UpdateComment 修改评论内容（仅作者本人）
	UpdateComment(ctx context.Context, id, userID uint, content string) (*Comment, error)

	// DeleteComment 软删除（幂等；不影响回复的可见性）
	DeleteComment(ctx context.Context, id uint) error

	// RestoreComment 恢复（幂等）
	RestoreComment(ctx context.Context, id uint) error

	// ListByBook 分页查询某图书的可见评论
	ListByBook(ctx context.Context, bookID uint, params ListParams) ([]*Comment, int64, error)

	// Replies 查询某评论的直接可见回复
	Replies(ctx context.Context, parentID uint) ([]*Comment, error)
}

type service struct {
	repo  Repository
	books BookChecker
}

// NewService 创建评论领域服务
func NewService(repo Repository, books BookChecker) Service {
	return &service{repo: repo, books: books}
}

// CreateComment 发表评论或回复
func (s *service) CreateComment(ctx context.Context, c *Comment) (*Comment, error) {
	// 1. 内容校验
	if strings.TrimSpace(c.Content) == "" {
		return nil, ErrContentRequired
	}

	// 2. 图书必须存在且可见
	if err := s.books.BookExists(ctx, c.BookID); err != nil {
		return nil, err
	}

	// 3. 父评论归属校验（写入时拒绝跨书回复）
	// 父评论即使已被软删除也允许回复——回复树的归属与可见性无关
	if c.ParentID != nil {
		parent, err := s.repo.FindAnyByID(ctx, *c.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.BookID != c.BookID {
			return nil, ErrParentMismatch
		}
	}

	// 4. 持久化（同事务内重算搜索向量）
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// GetComment 根据ID获取评论
func (s *service) GetComment(ctx context.Context, id uint) (*Comment, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateComment 修改评论内容
// 业务规则：只有评论作者本人可以修改
func (s *service) UpdateComment(ctx context.Context, id, userID uint, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.UserID != userID {
		return nil, ErrNotOwner
	}

	c.UpdateContent(content)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteComment 软删除评论
// 回复的可见性跟随回复自己的标志，不随父评论改变
func (s *service) DeleteComment(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// RestoreComment 恢复评论
func (s *service) RestoreComment(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

// ListByBook 分页查询某图书的可见评论
func (s *service) ListByBook(ctx context.Context, bookID uint, params ListParams) ([]*Comment, int64, error) {
	if err := s.books.BookExists(ctx, bookID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByBook(ctx, bookID, params)
}

// Replies 查询某评论的直接可见回复
// 父评论用FindAnyByID定位：父评论被软删除后，其可见回复仍可列出
func (s *service) Replies(ctx context.Context, parentID uint) ([]*Comment, error) {
	if _, err := s.repo.FindAnyByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.repo.Replies(ctx, parentID)
}
