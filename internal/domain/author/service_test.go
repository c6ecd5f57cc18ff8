package author

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthorRepo struct {
	authors map[uint]*Author
	nextID  uint
}

func newFakeRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uint]*Author), nextID: 1}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *Author) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uint) (*Author, error) {
	a, ok := r.authors[id]
	if !ok || a.IsDeleted {
		return nil, ErrAuthorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *Author) error {
	if _, ok := r.authors[a.ID]; !ok {
		return ErrAuthorNotFound
	}
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeAuthorRepo) List(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	out := make([]*Author, 0)
	for _, a := range r.authors {
		if !a.IsDeleted {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeAuthorRepo) SoftDelete(ctx context.Context, id uint) error {
	a, ok := r.authors[id]
	if !ok {
		return ErrAuthorNotFound
	}
	a.IsDeleted = true
	return nil
}

func (r *fakeAuthorRepo) Restore(ctx context.Context, id uint) error {
	a, ok := r.authors[id]
	if !ok {
		return ErrAuthorNotFound
	}
	a.IsDeleted = false
	return nil
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// TestService_CreateAuthor 创建作者的业务规则
func TestService_CreateAuthor(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	t.Run("正常创建", func(t *testing.T) {
		a, err := svc.CreateAuthor(ctx, NewAuthor("鲁", "迅", "luxun@example.com", "文学家",
			datePtr(1881, 9, 25), datePtr(1936, 10, 19)))
		require.NoError(t, err)
		assert.NotZero(t, a.ID)
		assert.Equal(t, "鲁 迅", a.FullName())
	})

	t.Run("姓名必填", func(t *testing.T) {
		_, err := svc.CreateAuthor(ctx, NewAuthor("", "迅", "", "", nil, nil))
		assert.ErrorIs(t, err, ErrNameRequired)

		_, err = svc.CreateAuthor(ctx, NewAuthor("鲁", "  ", "", "", nil, nil))
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("去世日期早于出生日期拒绝", func(t *testing.T) {
		_, err := svc.CreateAuthor(ctx, NewAuthor("张", "三", "", "",
			datePtr(1980, 1, 1), datePtr(1970, 1, 1)))
		assert.ErrorIs(t, err, ErrInvalidLifeDates)
	})
}

// TestService_SoftDelete 软删除与恢复的幂等性
func TestService_SoftDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	a, err := svc.CreateAuthor(ctx, NewAuthor("老", "舍", "", "", nil, nil))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAuthor(ctx, a.ID))
	_, err = svc.GetAuthor(ctx, a.ID)
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	// 幂等
	assert.NoError(t, svc.DeleteAuthor(ctx, a.ID))

	require.NoError(t, svc.RestoreAuthor(ctx, a.ID))
	restored, err := svc.GetAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "老 舍", restored.FullName(), "恢复后内容保持不变")

	assert.NoError(t, svc.RestoreAuthor(ctx, a.ID))
	assert.ErrorIs(t, svc.DeleteAuthor(ctx, 9999), ErrAuthorNotFound)
}

// TestAuthor_CurrentAge 年龄计算
func TestAuthor_CurrentAge(t *testing.T) {
	t.Run("已故按去世日期计算", func(t *testing.T) {
		a := NewAuthor("鲁", "迅", "", "", datePtr(1881, 9, 25), datePtr(1936, 10, 19))
		age := a.CurrentAge()
		require.NotNil(t, age)
		assert.Equal(t, 55, *age)
	})

	t.Run("生日未到减1", func(t *testing.T) {
		a := NewAuthor("张", "三", "", "", datePtr(1900, 6, 1), datePtr(1950, 5, 31))
		age := a.CurrentAge()
		require.NotNil(t, age)
		assert.Equal(t, 49, *age)
	})

	t.Run("出生日期未知返回nil", func(t *testing.T) {
		a := NewAuthor("佚", "名", "", "", nil, nil)
		assert.Nil(t, a.CurrentAge())
	})
}
