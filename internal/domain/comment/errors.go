package comment

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

var (
	// ErrCommentNotFound 评论不存在（或已被软删除）
	ErrCommentNotFound = apperrors.New(apperrors.ErrCodeCommentNotFound, "评论不存在")

	// ErrContentRequired 内容必填
	ErrContentRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "评论内容不能为空")

	// ErrParentMismatch 父评论与子评论不属于同一本书
	ErrParentMismatch = apperrors.New(apperrors.ErrCodeParentMismatch, "父评论不属于同一本书")

	// ErrNotOwner 无权操作他人评论
	ErrNotOwner = apperrors.New(apperrors.ErrCodeForbidden, "无权操作此评论")
)
