package handler

import (
	"github.com/gin-gonic/gin"

	apppublisher "github.com/xiebiao/bookcatalog/internal/application/publisher"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// PublisherHandler 出版社HTTP处理器
type PublisherHandler struct {
	useCase *apppublisher.UseCase
}

// NewPublisherHandler 创建出版社处理器
func NewPublisherHandler(useCase *apppublisher.UseCase) *PublisherHandler {
	return &PublisherHandler{useCase: useCase}
}

// Create 创建出版社
// @Summary      创建出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePublisherRequest true "出版社信息"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/publishers [post]
func (h *PublisherHandler) Create(c *gin.Context) {
	var req dto.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), apppublisher.CreatePublisherRequest{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
		Website: req.Website,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 出版社详情
func (h *PublisherHandler) Get(c *gin.Context) {
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

// Update 更新出版社
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, apppublisher.UpdatePublisherRequest{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
		Website: req.Website,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 软删除出版社（幂等）
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("publisher", "delete").Inc()
	response.Success(c, nil)
}

// Restore 恢复出版社（幂等）
func (h *PublisherHandler) Restore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Restore(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("publisher", "restore").Inc()
	response.Success(c, nil)
}

// List 出版社列表
func (h *PublisherHandler) List(c *gin.Context) {
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
