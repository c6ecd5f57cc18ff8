package comment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentRepo struct {
	comments map[uint]*Comment
	nextID   uint
}

func newFakeRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint]*Comment), nextID: 1}
}

func (r *fakeCommentRepo) Create(ctx context.Context, c *Comment) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) FindByID(ctx context.Context, id uint) (*Comment, error) {
	c, ok := r.comments[id]
	if !ok || c.IsDeleted {
		return nil, ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) FindAnyByID(ctx context.Context, id uint) (*Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) Update(ctx context.Context, c *Comment) error {
	if _, ok := r.comments[c.ID]; !ok {
		return ErrCommentNotFound
	}
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) ListByBook(ctx context.Context, bookID uint, params ListParams) ([]*Comment, int64, error) {
	out := make([]*Comment, 0)
	for _, c := range r.comments {
		if c.IsDeleted || c.BookID != bookID {
			continue
		}
		if params.TopLevel && c.ParentID != nil {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCommentRepo) Replies(ctx context.Context, parentID uint) ([]*Comment, error) {
	out := make([]*Comment, 0)
	for _, c := range r.comments {
		if !c.IsDeleted && c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) SoftDelete(ctx context.Context, id uint) error {
	c, ok := r.comments[id]
	if !ok {
		return ErrCommentNotFound
	}
	now := time.Now()
	c.IsDeleted = true
	c.DeletedAt = &now
	return nil
}

func (r *fakeCommentRepo) Restore(ctx context.Context, id uint) error {
	c, ok := r.comments[id]
	if !ok {
		return ErrCommentNotFound
	}
	c.IsDeleted = false
	c.DeletedAt = nil
	return nil
}

// fakeBookChecker 图书1存在，其余不存在
type fakeBookChecker struct {
	missingErr error
}

func (f *fakeBookChecker) BookExists(ctx context.Context, id uint) error {
	if id == 1 {
		return nil
	}
	return f.missingErr
}

func newTestService() (Service, *fakeCommentRepo) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeBookChecker{missingErr: ErrCommentNotFound})
	return svc, repo
}

// TestService_CreateComment 发表评论与回复的业务规则
func TestService_CreateComment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	t.Run("正常发表顶层评论", func(t *testing.T) {
		c, err := svc.CreateComment(ctx, NewComment(1, 10, nil, "好书"))
		require.NoError(t, err)
		assert.NotZero(t, c.ID)
		assert.False(t, c.IsReply())
	})

	t.Run("内容必填", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, NewComment(1, 10, nil, "   "))
		assert.ErrorIs(t, err, ErrContentRequired)
	})

	t.Run("图书不存在拒绝", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, NewComment(99, 10, nil, "评论"))
		assert.Error(t, err)
	})
}

// TestService_Reply 回复的归属规则
func TestService_Reply(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	parent, err := svc.CreateComment(ctx, NewComment(1, 10, nil, "父评论"))
	require.NoError(t, err)

	t.Run("正常回复", func(t *testing.T) {
		reply, err := svc.CreateComment(ctx, NewComment(1, 20, &parent.ID, "回复"))
		require.NoError(t, err)
		assert.True(t, reply.IsReply())
	})

	t.Run("跨书回复拒绝", func(t *testing.T) {
		// 手工塞一条属于图书2的父评论（绕过BookChecker）
		other := NewComment(2, 10, nil, "另一本书的评论")
		require.NoError(t, repo.Create(ctx, other))

		_, err := svc.CreateComment(ctx, NewComment(1, 20, &other.ID, "跨书回复"))
		assert.ErrorIs(t, err, ErrParentMismatch)
	})

	t.Run("父评论不存在拒绝", func(t *testing.T) {
		missing := uint(9999)
		_, err := svc.CreateComment(ctx, NewComment(1, 20, &missing, "回复"))
		assert.ErrorIs(t, err, ErrCommentNotFound)
	})

	t.Run("允许回复已被软删除的父评论", func(t *testing.T) {
		require.NoError(t, svc.DeleteComment(ctx, parent.ID))

		reply, err := svc.CreateComment(ctx, NewComment(1, 30, &parent.ID, "给已删除评论的回复"))
		assert.NoError(t, err, "回复树的归属与可见性无关")
		assert.NotZero(t, reply.ID)
	})
}

// TestService_VisibilityIndependence 父评论删除不影响回复可见性
func TestService_VisibilityIndependence(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	parent, err := svc.CreateComment(ctx, NewComment(1, 10, nil, "父评论"))
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, NewComment(1, 20, &parent.ID, "回复A"))
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, NewComment(1, 30, &parent.ID, "回复B"))
	require.NoError(t, err)

	// 删除父评论
	require.NoError(t, svc.DeleteComment(ctx, parent.ID))

	// 父评论本身不可见
	_, err = svc.GetComment(ctx, parent.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	// 但其可见回复仍可列出
	replies, err := svc.Replies(ctx, parent.ID)
	require.NoError(t, err)
	assert.Len(t, replies, 2, "回复的可见性独立于父评论")
}

// TestService_UpdateComment 只有作者本人可以修改
func TestService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	c, err := svc.CreateComment(ctx, NewComment(1, 10, nil, "原内容"))
	require.NoError(t, err)

	t.Run("作者本人修改成功", func(t *testing.T) {
		updated, err := svc.UpdateComment(ctx, c.ID, 10, "新内容")
		require.NoError(t, err)
		assert.Equal(t, "新内容", updated.Content)
	})

	t.Run("他人修改拒绝", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, c.ID, 99, "篡改")
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("空内容拒绝", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, c.ID, 10, " ")
		assert.ErrorIs(t, err, ErrContentRequired)
	})
}
