package author

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在（或已被软删除）
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrNameRequired 姓名必填
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "作者姓名不能为空")

	// ErrInvalidLifeDates 去世日期早于出生日期
	ErrInvalidLifeDates = apperrors.New(apperrors.ErrCodeInvalidParams, "去世日期不能早于出生日期")
)
