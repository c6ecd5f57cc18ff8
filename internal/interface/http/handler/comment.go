package handler

import (
	"github.com/gin-gonic/gin"

	appcomment "github.com/xiebiao/bookcatalog/internal/application/comment"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// CommentHandler 评论HTTP处理器
type CommentHandler struct {
	useCase *appcomment.UseCase
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(useCase *appcomment.UseCase) *CommentHandler {
	return &CommentHandler{useCase: useCase}
}

// Create 发表评论或回复
// @Summary      发表评论
// @Description  parent_id非null时为回复，父评论必须属于同一本书（否则40007）
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "评论内容"
// @Success      200 {object} response.Response
// @Security     BearerAuth
// @Router       /api/v1/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 评论归属于当前登录用户，不信任请求体里的user_id
	result, err := h.useCase.Create(c.Request.Context(), appcomment.CreateCommentRequest{
		BookID:   req.BookID,
		UserID:   middleware.GetUserID(c),
		ParentID: req.ParentID,
		Content:  req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 评论详情
func (h *CommentHandler) Get(c *gin.Context) {
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

// Update 修改评论内容（仅作者本人，否则40104）
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.Update(c.Request.Context(), id, middleware.GetUserID(c), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 软删除评论（幂等；不影响回复的可见性）
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("comment", "delete").Inc()
	response.Success(c, nil)
}

// Restore 恢复评论（幂等）
func (h *CommentHandler) Restore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Restore(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	metrics.SoftDeletesTotal.WithLabelValues("comment", "restore").Inc()
	response.Success(c, nil)
}

// ListByBook 某图书的可见评论（按created_at降序分页）
// @Summary      图书评论列表
// @Tags         评论
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Param        top_level query bool false "只返回顶层评论"
// @Success      200 {object} response.Response
// @Router       /api/v1/books/{id}/comments [get]
func (h *CommentHandler) ListByBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var q dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.useCase.ListByBook(c.Request.Context(), appcomment.ListCommentsRequest{
		BookID:   bookID,
		Page:     q.Page,
		PageSize: q.PageSize,
		TopLevel: q.TopLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Replies 某评论的直接可见回复
// 父评论即使已被软删除，其可见回复仍可列出
func (h *CommentHandler) Replies(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.useCase.Replies(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
