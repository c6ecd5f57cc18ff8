package author

import (
	"context"
	"time"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// dateLayout 日期字段的传输格式
const dateLayout = "2006-01-02"

// UseCase 作者用例
// 设计说明：
// 1. 编排领域服务，处理DTO与领域实体的转换
// 2. 分页参数规范化（默认值、上限截断）在这一层完成
type UseCase struct {
	service author.Service
	limits  application.PageLimits
}

// NewUseCase 创建作者用例
func NewUseCase(service author.Service, limits application.PageLimits) *UseCase {
	return &UseCase{service: service, limits: limits}
}

// =========================================
// 应用层DTO
// =========================================

// CreateAuthorRequest 创建作者请求
type CreateAuthorRequest struct {
	FirstName   string
	LastName    string
	Email       string
	Bio         string
	DateOfBirth string // "2006-01-02"，空串表示未知
	DateOfDeath string
}

// UpdateAuthorRequest 更新作者请求（空字段保持不变）
type UpdateAuthorRequest struct {
	FirstName string
	LastName  string
	Email     string
	Bio       string
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID          uint    `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	DateOfBirth *string `json:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death"`
	Age         *int    `json:"age"`
	Bio         string  `json:"bio"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ListAuthorsResponse 作者列表响应
type ListAuthorsResponse struct {
	List       []AuthorResponse `json:"list"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// =========================================
// 用例方法
// =========================================

// Create 创建作者
func (uc *UseCase) Create(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	dod, err := parseDate(req.DateOfDeath)
	if err != nil {
		return nil, err
	}

	a, err := uc.service.CreateAuthor(ctx, author.NewAuthor(
		req.FirstName, req.LastName, req.Email, req.Bio, dob, dod))
	if err != nil {
		return nil, err
	}
	return toResponse(a), nil
}

// Get 获取作者详情
func (uc *UseCase) Get(ctx context.Context, id uint) (*AuthorResponse, error) {
	a, err := uc.service.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(a), nil
}

// Update 更新作者信息
func (uc *UseCase) Update(ctx context.Context, id uint, req UpdateAuthorRequest) (*AuthorResponse, error) {
	a, err := uc.service.UpdateAuthor(ctx, id, req.FirstName, req.LastName, req.Email, req.Bio)
	if err != nil {
		return nil, err
	}
	return toResponse(a), nil
}

// Delete 软删除作者（幂等）
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.service.DeleteAuthor(ctx, id)
}

// Restore 恢复作者（幂等）
func (uc *UseCase) Restore(ctx context.Context, id uint) error {
	return uc.service.RestoreAuthor(ctx, id)
}

// List 分页查询作者
func (uc *UseCase) List(ctx context.Context, page, pageSize int) (*ListAuthorsResponse, error) {
	page, pageSize = uc.limits.Normalize(page, pageSize)

	authors, total, err := uc.service.ListAuthors(ctx, author.ListParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	list := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		list[i] = *toResponse(a)
	}

	return &ListAuthorsResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: application.TotalPages(total, pageSize),
	}, nil
}

// =========================================
// 辅助函数
// =========================================

func toResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		FullName:    a.FullName(),
		Email:       a.Email,
		DateOfBirth: formatDate(a.DateOfBirth),
		DateOfDeath: formatDate(a.DateOfDeath),
		Age:         a.CurrentAge(),
		Bio:         a.Bio,
		CreatedAt:   a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "日期格式应为YYYY-MM-DD: "+s)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
