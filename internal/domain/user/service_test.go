package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

type fakeUserRepo struct {
	users  map[string]*User // email → user
	nextID uint
}

func newFakeRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	if _, ok := r.users[u.Email]; ok {
		return apperrors.ErrEmailDuplicate // 模拟UNIQUE索引冲突转换
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// TestService_Register 注册的参数校验
func TestService_Register(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	t.Run("正常注册", func(t *testing.T) {
		u, err := svc.Register(ctx, "reader@example.com", "passw0rd123", "书虫")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.NotEqual(t, "passw0rd123", u.Password, "密码必须加密存储")
	})

	t.Run("邮箱重复拒绝", func(t *testing.T) {
		_, err := svc.Register(ctx, "reader@example.com", "passw0rd123", "书虫2")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})

	t.Run("邮箱格式非法拒绝", func(t *testing.T) {
		_, err := svc.Register(ctx, "not-an-email", "passw0rd123", "书虫")
		assert.Error(t, err)
	})

	t.Run("弱密码拒绝", func(t *testing.T) {
		// 太短
		_, err := svc.Register(ctx, "a@b.com", "p1", "书虫")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

		// 纯数字
		_, err = svc.Register(ctx, "a@b.com", "12345678", "书虫")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

		// 纯字母
		_, err = svc.Register(ctx, "a@b.com", "abcdefgh", "书虫")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("昵称长度校验", func(t *testing.T) {
		_, err := svc.Register(ctx, "a@b.com", "passw0rd123", "x")
		assert.Error(t, err)
	})
}

// TestService_Login 登录校验
func TestService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	_, err := svc.Register(ctx, "reader@example.com", "passw0rd123", "书虫")
	require.NoError(t, err)

	t.Run("正确密码登录成功", func(t *testing.T) {
		u, err := svc.Login(ctx, "reader@example.com", "passw0rd123")
		require.NoError(t, err)
		assert.Equal(t, "书虫", u.Nickname)
	})

	t.Run("错误密码拒绝", func(t *testing.T) {
		_, err := svc.Login(ctx, "reader@example.com", "wrongpass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "passw0rd123")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
