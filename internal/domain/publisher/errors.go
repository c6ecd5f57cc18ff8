package publisher

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

var (
	// ErrPublisherNotFound 出版社不存在（或已被软删除）
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodePublisherNotFound, "出版社不存在")

	// ErrNameRequired 名称必填
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "出版社名称不能为空")
)
