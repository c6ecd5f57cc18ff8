package category

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrNameRequired 名称必填
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")

	// ErrCategoryCycle 父子关系成环（分类不能是自己的祖先）
	ErrCategoryCycle = apperrors.New(apperrors.ErrCodeCategoryCycle, "分类父子关系不能成环")
)
