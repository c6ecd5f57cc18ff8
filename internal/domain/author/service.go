package author

import (
	"context"
	"strings"
)

// Service 作者领域服务接口
type Service interface {
	// CreateAuthor 创建作者
	// 业务规则：姓名必填；去世日期不能早于出生日期
	CreateAuthor(ctx context.Context, a *Author) (*Author, error)

	// GetAuthor 根据ID获取可见作者
	GetAuthor(ctx context.Context, id uint) (*Author, error)

	// UpdateAuthor 更新作者信息
	UpdateAuthor(ctx context.Context, id uint, firstName, lastName, email, bio string) (*Author, error)

	// DeleteAuthor 软删除（幂等）
	DeleteAuthor(ctx context.Context, id uint) error

	// RestoreAuthor 恢复（幂等）
	RestoreAuthor(ctx context.Context, id uint) error

	// ListAuthors 分页查询可见作者
	ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, a *Author) (*Author, error) {
	// 1. 姓名校验
	if strings.TrimSpace(a.FirstName) == "" || strings.TrimSpace(a.LastName) == "" {
		return nil, ErrNameRequired
	}

	// 2. 生卒日期校验
	if a.DateOfBirth != nil && a.DateOfDeath != nil && a.DateOfDeath.Before(*a.DateOfBirth) {
		return nil, ErrInvalidLifeDates
	}

	// 3. 持久化（仓储在同一事务内重算搜索向量，失败则整个写入回滚）
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// GetAuthor 根据ID获取作者
func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAuthor 更新作者信息
func (s *service) UpdateAuthor(ctx context.Context, id uint, firstName, lastName, email, bio string) (*Author, error) {
	// 1. 查询可见作者
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 更新字段
	a.UpdateInfo(firstName, lastName, email, bio)

	// 3. 持久化（搜索向量同步重算）
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// DeleteAuthor 软删除作者
// 不级联：作者的图书各自保留自己的可见性标志
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// RestoreAuthor 恢复作者
func (s *service) RestoreAuthor(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

// ListAuthors 分页查询作者列表
func (s *service) ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	return s.repo.List(ctx, params)
}
