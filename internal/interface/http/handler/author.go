package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	useCase *appauthor.UseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(useCase *appauthor.UseCase) *AuthorHandler {
	return &AuthorHandler{useCase: useCase}
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), appauthor.CreateAuthorRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Bio:         req.Bio,
		DateOfBirth: req.DateOfBirth,
		DateOfDeath: req.DateOfDeath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update 更新作者
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "更新字段"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, appauthor.UpdateAuthorRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Bio:       req.Bio,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 软删除作者（幂等）
// @Summary      删除作者
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("author", "delete").Inc()
	response.Success(c, nil)
}

// Restore 恢复作者（幂等）
// @Summary      恢复作者
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/authors/{id}/restore [post]
func (h *AuthorHandler) Restore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Restore(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("author", "restore").Inc()
	response.Success(c, nil)
}

// List 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
