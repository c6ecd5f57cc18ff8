package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器（含图书版本）
type BookHandler struct {
	useCase *appbook.UseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(useCase *appbook.UseCase) *BookHandler {
	return &BookHandler{useCase: useCase}
}

// Create 创建图书
// @Summary      创建图书
// @Description  created_at可选（RFC3339），年份必须落在配置的分区范围内
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), appbook.CreateBookRequest{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		PublicationYear: req.PublicationYear,
		Available:       req.Available,
		AuthorID:        req.AuthorID,
		PublisherID:     req.PublisherID,
		CategoryID:      req.CategoryID,
		CreatedAt:       req.CreatedAt,
	})
	if err != nil {
		if book.IsPartitionRangeError(err) {
			metrics.PartitionRejectsTotal.Inc()
		}
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
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

// Update 更新图书（created_at不可修改，分区归属不变）
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:           req.Title,
		Description:     req.Description,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		Available:       req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 软删除图书（幂等，不级联到版本和评论）
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("book", "delete").Inc()
	response.Success(c, nil)
}

// Restore 恢复图书（幂等）
func (h *BookHandler) Restore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Restore(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("book", "restore").Inc()
	response.Success(c, nil)
}

// List 图书列表（支持作者/出版社/分类/上架状态过滤）
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Param        author_id query int false "按作者过滤"
// @Param        publisher_id query int false "按出版社过滤"
// @Param        category_id query int false "按分类过滤"
// @Param        available query bool false "按上架状态过滤"
// @Success      200 {object} response.Response
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var q dto.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.List(c.Request.Context(), appbook.ListBooksRequest{
		Page:      q.Page,
		PageSize:  q.PageSize,
		AuthorID:  q.AuthorID,
		Publisher: q.Publisher,
		Category:  q.Category,
		Available: q.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// =========================================
// 图书版本
// =========================================

// AddFormat 为图书添加版本
// @Summary      添加图书版本
// @Description  同一图书的同一版本类型唯一，重复返回40008
// @Tags         图书版本
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.AddFormatRequest true "版本信息"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/books/{id}/formats [post]
func (h *BookHandler) AddFormat(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.AddFormat(c.Request.Context(), appbook.AddFormatRequest{
		BookID:     bookID,
		FormatType: req.FormatType,
		Price:      req.Price,
		Stock:      req.Stock,
		CreatedAt:  req.CreatedAt,
	})
	if err != nil {
		if book.IsPartitionRangeError(err) {
			metrics.PartitionRejectsTotal.Inc()
		}
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListFormats 图书的全部可见版本
func (h *BookHandler) ListFormats(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.ListFormats(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetFormat 版本详情
func (h *BookHandler) GetFormat(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.GetFormat(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateFormat 更新版本价格与库存
func (h *BookHandler) UpdateFormat(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.UpdateFormat(c.Request.Context(), id, appbook.UpdateFormatRequest{
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteFormat 软删除版本（幂等）
func (h *BookHandler) DeleteFormat(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.DeleteFormat(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("book_format", "delete").Inc()
	response.Success(c, nil)
}

// RestoreFormat 恢复版本（幂等）
func (h *BookHandler) RestoreFormat(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.RestoreFormat(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("book_format", "restore").Inc()
	response.Success(c, nil)
}
