package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/bookcatalog/internal/application/category"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// CategoryHandler 分类HTTP处理器
// 分类没有删除/恢复接口：永久性分类体系
type CategoryHandler struct {
	useCase *appcategory.UseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(useCase *appcategory.UseCase) *CategoryHandler {
	return &CategoryHandler{useCase: useCase}
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Create(c.Request.Context(), appcategory.CreateCategoryRequest{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 分类详情
func (h *CategoryHandler) Get(c *gin.Context) {
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

// Update 更新分类（可调整父分类，成环返回40010）
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, appcategory.UpdateCategoryRequest{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		MoveParent:  req.MoveParent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 分类列表
func (h *CategoryHandler) List(c *gin.Context) {
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

// Subcategories 直接子分类
func (h *CategoryHandler) Subcategories(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Subcategories(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
