package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	categories map[uint]*Category
	nextID     uint
}

func newFakeRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint]*Category), nextID: 1}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *Category) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uint) (*Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, c *Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return ErrCategoryNotFound
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context, params ListParams) ([]*Category, int64, error) {
	out := make([]*Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCategoryRepo) Children(ctx context.Context, parentID uint) ([]*Category, error) {
	out := make([]*Category, 0)
	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

// mustCreate 构造测试分类树的辅助函数
func mustCreate(t *testing.T, svc Service, name string, parentID *uint) *Category {
	t.Helper()
	c, err := svc.CreateCategory(context.Background(), NewCategory(name, "", parentID))
	require.NoError(t, err)
	return c
}

// TestService_CreateCategory 创建分类
func TestService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	t.Run("正常创建顶级分类", func(t *testing.T) {
		c, err := svc.CreateCategory(ctx, NewCategory("文学", "文学类图书", nil))
		require.NoError(t, err)
		assert.NotZero(t, c.ID)
		assert.True(t, c.IsRoot())
	})

	t.Run("名称必填", func(t *testing.T) {
		_, err := svc.CreateCategory(ctx, NewCategory("  ", "", nil))
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("父分类不存在拒绝", func(t *testing.T) {
		missing := uint(9999)
		_, err := svc.CreateCategory(ctx, NewCategory("小说", "", &missing))
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

// TestService_UpdateCategory_Cycle 父子关系环检测
// 分类树：文学 → 小说 → 科幻
func TestService_UpdateCategory_Cycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	literature := mustCreate(t, svc, "文学", nil)
	novel := mustCreate(t, svc, "小说", &literature.ID)
	scifi := mustCreate(t, svc, "科幻", &novel.ID)

	t.Run("自己做自己的父分类拒绝", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, novel.ID, "", "", &novel.ID, true)
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("直接子分类做父分类拒绝", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, novel.ID, "", "", &scifi.ID, true)
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("深层后代做父分类拒绝", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, literature.ID, "", "", &scifi.ID, true)
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("提升为顶级分类", func(t *testing.T) {
		updated, err := svc.UpdateCategory(ctx, scifi.ID, "", "", nil, true)
		require.NoError(t, err)
		assert.Nil(t, updated.ParentID)
	})

	t.Run("moveParent为false时父分类不变", func(t *testing.T) {
		updated, err := svc.UpdateCategory(ctx, novel.ID, "长篇小说", "", nil, false)
		require.NoError(t, err)
		assert.Equal(t, "长篇小说", updated.Name)
		require.NotNil(t, updated.ParentID)
		assert.Equal(t, literature.ID, *updated.ParentID)
	})
}

// TestService_Subcategories 直接子分类查询
func TestService_Subcategories(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	root := mustCreate(t, svc, "技术", nil)
	mustCreate(t, svc, "编程", &root.ID)
	mustCreate(t, svc, "网络", &root.ID)

	children, err := svc.Subcategories(ctx, root.ID)
	require.NoError(t, err)
	assert.Len(t, children, 2)

	// 不存在的分类返回NotFound而不是空列表
	_, err = svc.Subcategories(ctx, 9999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
