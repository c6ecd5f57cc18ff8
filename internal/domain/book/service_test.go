package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =========================================
// 内存假仓储（单元测试不触数据库）
// =========================================

type fakeBookRepo struct {
	books  map[uint]*Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*Book), nextID: 1}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *Book) error {
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*Book, error) {
	b, ok := r.books[id]
	if !ok || b.IsDeleted {
		return nil, ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, b *Book) error {
	stored, ok := r.books[b.ID]
	if !ok || stored.IsDeleted {
		return ErrBookNotFound
	}
	cp := *b
	cp.CreatedAt = stored.CreatedAt // created_at永不修改
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	out := make([]*Book, 0)
	for _, b := range r.books {
		if !b.IsDeleted {
			out = append(out, b)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookRepo) SoftDelete(ctx context.Context, id uint) error {
	b, ok := r.books[id]
	if !ok {
		return ErrBookNotFound
	}
	b.IsDeleted = true // 已删除时重复删除是空操作
	return nil
}

func (r *fakeBookRepo) Restore(ctx context.Context, id uint) error {
	b, ok := r.books[id]
	if !ok {
		return ErrBookNotFound
	}
	b.IsDeleted = false
	return nil
}

type fakeFormatRepo struct {
	formats map[uint]*Format
	nextID  uint
}

func newFakeFormatRepo() *fakeFormatRepo {
	return &fakeFormatRepo{formats: make(map[uint]*Format), nextID: 1}
}

func (r *fakeFormatRepo) Create(ctx context.Context, f *Format) error {
	// 模拟(book_id, format_type)在可见记录间的唯一约束
	for _, existing := range r.formats {
		if !existing.IsDeleted && existing.BookID == f.BookID && existing.FormatType == f.FormatType {
			return ErrFormatDuplicate
		}
	}
	f.ID = r.nextID
	r.nextID++
	cp := *f
	r.formats[f.ID] = &cp
	return nil
}

func (r *fakeFormatRepo) FindByID(ctx context.Context, id uint) (*Format, error) {
	f, ok := r.formats[id]
	if !ok || f.IsDeleted {
		return nil, ErrFormatNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFormatRepo) Update(ctx context.Context, f *Format) error {
	if _, ok := r.formats[f.ID]; !ok {
		return ErrFormatNotFound
	}
	cp := *f
	r.formats[f.ID] = &cp
	return nil
}

func (r *fakeFormatRepo) ListByBook(ctx context.Context, bookID uint) ([]*Format, error) {
	out := make([]*Format, 0)
	for _, f := range r.formats {
		if !f.IsDeleted && f.BookID == bookID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFormatRepo) SoftDelete(ctx context.Context, id uint) error {
	f, ok := r.formats[id]
	if !ok {
		return ErrFormatNotFound
	}
	f.IsDeleted = true
	return nil
}

func (r *fakeFormatRepo) Restore(ctx context.Context, id uint) error {
	f, ok := r.formats[id]
	if !ok {
		return ErrFormatNotFound
	}
	f.IsDeleted = false
	return nil
}

// fakeRefChecker 可配置的引用校验器
type fakeRefChecker struct {
	authorErr    error
	publisherErr error
	categoryErr  error
}

func (c *fakeRefChecker) AuthorExists(ctx context.Context, id uint) error    { return c.authorErr }
func (c *fakeRefChecker) PublisherExists(ctx context.Context, id uint) error { return c.publisherErr }
func (c *fakeRefChecker) CategoryExists(ctx context.Context, id uint) error  { return c.categoryErr }

func newTestService() (Service, *fakeBookRepo, *fakeFormatRepo) {
	repo := newFakeBookRepo()
	formatRepo := newFakeFormatRepo()
	svc := NewService(repo, formatRepo, &fakeRefChecker{}, NewPartitionRouter([]int{2023, 2024, 2025}))
	return svc, repo, formatRepo
}

// TestService_CreateBook 创建图书的业务规则
func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		svc, _, _ := newTestService()
		b := NewBook("Go程序设计语言", "经典教材", 9900, 2024, true, 1, nil, nil, date(2024, 5, 1))

		created, err := svc.CreateBook(ctx, b)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, date(2024, 5, 1), created.CreatedAt, "创建时间决定分区归属，不应被覆盖")
	})

	t.Run("书名必填", func(t *testing.T) {
		svc, _, _ := newTestService()
		b := NewBook("   ", "", 9900, 2024, true, 1, nil, nil, date(2024, 5, 1))

		_, err := svc.CreateBook(ctx, b)
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("价格必须大于0", func(t *testing.T) {
		svc, _, _ := newTestService()
		b := NewBook("书名", "", 0, 2024, true, 1, nil, nil, date(2024, 5, 1))

		_, err := svc.CreateBook(ctx, b)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("created_at越界拒绝", func(t *testing.T) {
		svc, repo, _ := newTestService()
		b := NewBook("书名", "", 9900, 2024, true, 1, nil, nil, date(2026, 1, 1))

		_, err := svc.CreateBook(ctx, b)
		require.Error(t, err)
		assert.True(t, IsPartitionRangeError(err))
		assert.Empty(t, repo.books, "越界写入不应落库")
	})

	t.Run("作者不存在拒绝", func(t *testing.T) {
		repo := newFakeBookRepo()
		svc := NewService(repo, newFakeFormatRepo(),
			&fakeRefChecker{authorErr: ErrBookNotFound}, // 借一个NotFound错误
			NewPartitionRouter([]int{2024}))

		b := NewBook("书名", "", 9900, 2024, true, 99, nil, nil, date(2024, 1, 1))
		_, err := svc.CreateBook(ctx, b)
		assert.Error(t, err)
	})
}

// TestService_UpdateBook 更新不改变created_at（分区归属不变）
func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	b := NewBook("旧书名", "旧描述", 5000, 2023, true, 1, nil, nil, date(2023, 7, 1))
	created, err := svc.CreateBook(ctx, b)
	require.NoError(t, err)

	newPrice := int64(6000)
	unavailable := false
	updated, err := svc.UpdateBook(ctx, created.ID, "新书名", "", 0, &newPrice, &unavailable)
	require.NoError(t, err)

	assert.Equal(t, "新书名", updated.Title)
	assert.Equal(t, "旧描述", updated.Description, "空字段保持不变")
	assert.Equal(t, int64(6000), updated.Price)
	assert.False(t, updated.Available)
	assert.Equal(t, date(2023, 7, 1), repo.books[created.ID].CreatedAt, "created_at永不修改")

	t.Run("非法价格拒绝", func(t *testing.T) {
		bad := int64(-1)
		_, err := svc.UpdateBook(ctx, created.ID, "", "", 0, &bad, nil)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

// TestService_SoftDelete 软删除与恢复的幂等性
func TestService_SoftDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	b := NewBook("书名", "", 5000, 2024, true, 1, nil, nil, date(2024, 1, 1))
	created, err := svc.CreateBook(ctx, b)
	require.NoError(t, err)

	// 删除后不可见
	require.NoError(t, svc.DeleteBook(ctx, created.ID))
	_, err = svc.GetBook(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)

	// 重复删除是空操作
	assert.NoError(t, svc.DeleteBook(ctx, created.ID), "重复删除应幂等")

	// 恢复后可见，内容保持
	require.NoError(t, svc.RestoreBook(ctx, created.ID))
	restored, err := svc.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "书名", restored.Title)

	// 重复恢复是空操作
	assert.NoError(t, svc.RestoreBook(ctx, created.ID), "重复恢复应幂等")

	// 不存在的ID返回NotFound
	assert.ErrorIs(t, svc.DeleteBook(ctx, 9999), ErrBookNotFound)
}

// TestService_AddFormat 图书版本的业务规则
func TestService_AddFormat(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	b := NewBook("书名", "", 5000, 2024, true, 1, nil, nil, date(2024, 1, 1))
	created, err := svc.CreateBook(ctx, b)
	require.NoError(t, err)

	t.Run("正常添加", func(t *testing.T) {
		f := NewFormat(created.ID, FormatPDF, 3000, 0, date(2024, 2, 1))
		added, err := svc.AddFormat(ctx, f)
		require.NoError(t, err)
		assert.NotZero(t, added.ID)
	})

	t.Run("同书同类型重复拒绝", func(t *testing.T) {
		f := NewFormat(created.ID, FormatPDF, 2500, 10, date(2024, 3, 1))
		_, err := svc.AddFormat(ctx, f)
		assert.ErrorIs(t, err, ErrFormatDuplicate)
	})

	t.Run("不同类型允许", func(t *testing.T) {
		f := NewFormat(created.ID, FormatEPUB, 2800, 5, date(2024, 3, 1))
		_, err := svc.AddFormat(ctx, f)
		assert.NoError(t, err)
	})

	t.Run("非法类型拒绝", func(t *testing.T) {
		f := NewFormat(created.ID, FormatType("VINYL"), 2800, 5, date(2024, 3, 1))
		_, err := svc.AddFormat(ctx, f)
		assert.ErrorIs(t, err, ErrInvalidFormatType)
	})

	t.Run("库存不能为负", func(t *testing.T) {
		f := NewFormat(created.ID, FormatAudio, 2800, -1, date(2024, 3, 1))
		_, err := svc.AddFormat(ctx, f)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("分区越界拒绝", func(t *testing.T) {
		f := NewFormat(created.ID, FormatAudio, 2800, 5, date(2026, 1, 1))
		_, err := svc.AddFormat(ctx, f)
		assert.True(t, IsPartitionRangeError(err))
	})

	t.Run("图书不可见时拒绝", func(t *testing.T) {
		require.NoError(t, svc.DeleteBook(ctx, created.ID))
		defer func() { _ = svc.RestoreBook(ctx, created.ID) }()

		f := NewFormat(created.ID, FormatAudio, 2800, 5, date(2024, 3, 1))
		_, err := svc.AddFormat(ctx, f)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

// TestService_FormatVisibility 版本软删除独立于图书
func TestService_FormatVisibility(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	b := NewBook("书名", "", 5000, 2024, true, 1, nil, nil, date(2024, 1, 1))
	created, err := svc.CreateBook(ctx, b)
	require.NoError(t, err)

	f := NewFormat(created.ID, FormatPhysical, 5000, 20, date(2024, 2, 1))
	added, err := svc.AddFormat(ctx, f)
	require.NoError(t, err)

	// 删除版本后，版本列表为空，但图书仍可见
	require.NoError(t, svc.DeleteFormat(ctx, added.ID))
	formats, err := svc.ListFormats(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, formats)

	_, err = svc.GetBook(ctx, created.ID)
	assert.NoError(t, err, "删除版本不应影响图书可见性")

	// 恢复后重新出现
	require.NoError(t, svc.RestoreFormat(ctx, added.ID))
	formats, err = svc.ListFormats(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, formats, 1)
}

// TestNewBook_DefaultCreatedAt created_at零值取当前时间
func TestNewBook_DefaultCreatedAt(t *testing.T) {
	before := time.Now()
	b := NewBook("书名", "", 5000, 2024, true, 1, nil, nil, time.Time{})
	after := time.Now()

	assert.False(t, b.CreatedAt.Before(before))
	assert.False(t, b.CreatedAt.After(after))
}
