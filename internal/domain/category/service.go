package category

import (
	"context"
	"strings"
)

// maxTreeDepth 环检测时向上回溯的最大深度（防御脏数据导致死循环）
const maxTreeDepth = 64

// Service 分类领域服务接口
type Service interface {
	// CreateCategory 创建分类
	// 业务规则：名称必填；父分类必须存在
	CreateCategory(ctx context.Context, c *Category) (*Category, error)

	// GetCategory 根据ID获取分类
	GetCategory(ctx context.Context, id uint) (*Category, error)

	// UpdateCategory 更新分类（可调整父分类，成环则拒绝）
	UpdateCategory(ctx context.Context, id uint, name, description string, parentID *uint, moveParent bool) (*Category, error)

	// ListCategories 分页查询分类
	ListCategories(ctx context.Context, params ListParams) ([]*Category, int64, error)

	// Subcategories 查询直接子分类
	Subcategories(ctx context.Context, id uint) ([]*Category, error)
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateCategory 创建分类
func (s *service) CreateCategory(ctx context.Context, c *Category) (*Category, error) {
	// 1. 名称校验
	if strings.TrimSpace(c.Name) == "" {
		return nil, ErrNameRequired
	}

	// 2. 父分类必须存在
	if c.ParentID != nil {
		if _, err := s.repo.FindByID(ctx, *c.ParentID); err != nil {
			return nil, err
		}
	}

	// 3. 持久化
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateCategory 更新分类
// moveParent=true时将父分类调整为parentID（nil表示提升为顶级分类）
func (s *service) UpdateCategory(ctx context.Context, id uint, name, description string, parentID *uint, moveParent bool) (*Category, error) {
	// 1. 查询分类
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 更新基本信息
	c.UpdateInfo(name, description)

	// 3. 调整父分类（需要环检测）
	if moveParent {
		if parentID != nil {
			if err := s.checkCycle(ctx, id, *parentID); err != nil {
				return nil, err
			}
		}
		c.ParentID = parentID
	}

	// 4. 持久化
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context, params ListParams) ([]*Category, int64, error) {
	return s.repo.List(ctx, params)
}

// Subcategories 查询直接子分类
func (s *service) Subcategories(ctx context.Context, id uint) ([]*Category, error) {
	// 先确认分类存在，让不存在的id返回NotFound而不是空列表
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Children(ctx, id)
}

// checkCycle 检查把newParentID设为id的父分类是否成环
// 从newParentID沿父链向上走，遇到id则成环
func (s *service) checkCycle(ctx context.Context, id, newParentID uint) error {
	if newParentID == id {
		return ErrCategoryCycle
	}

	current := newParentID
	for depth := 0; depth < maxTreeDepth; depth++ {
		parent, err := s.repo.FindByID(ctx, current)
		if err != nil {
			return err
		}
		if parent.ParentID == nil {
			return nil
		}
		if *parent.ParentID == id {
			return ErrCategoryCycle
		}
		current = *parent.ParentID
	}
	return ErrCategoryCycle
}
