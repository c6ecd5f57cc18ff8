package publisher

import (
	"context"
	"strings"
)

// Service 出版社领域服务接口
type Service interface {
	CreatePublisher(ctx context.Context, p *Publisher) (*Publisher, error)
	GetPublisher(ctx context.Context, id uint) (*Publisher, error)
	UpdatePublisher(ctx context.Context, id uint, name, address, email, phone, website string) (*Publisher, error)
	DeletePublisher(ctx context.Context, id uint) error
	RestorePublisher(ctx context.Context, id uint) error
	ListPublishers(ctx context.Context, params ListParams) ([]*Publisher, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建出版社领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreatePublisher 创建出版社
// 业务规则：名称必填
func (s *service) CreatePublisher(ctx context.Context, p *Publisher) (*Publisher, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrNameRequired
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPublisher(ctx context.Context, id uint) (*Publisher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdatePublisher(ctx context.Context, id uint, name, address, email, phone, website string) (*Publisher, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.UpdateInfo(name, address, email, phone, website)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePublisher 软删除（幂等，不级联到图书）
func (s *service) DeletePublisher(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// RestorePublisher 恢复（幂等）
func (s *service) RestorePublisher(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

func (s *service) ListPublishers(ctx context.Context, params ListParams) ([]*Publisher, int64, error) {
	return s.repo.List(ctx, params)
}
