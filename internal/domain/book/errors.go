package book

import (
	"fmt"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在（或已被软删除）
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrFormatNotFound 图书版本不存在（或已被软删除）
	ErrFormatNotFound = apperrors.New(apperrors.ErrCodeFormatNotFound, "图书版本不存在")

	// ErrTitleRequired 书名必填
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")

	// ErrInvalidFormatType 无效的版本类型
	ErrInvalidFormatType = apperrors.New(apperrors.ErrCodeInvalidParams, "版本类型必须是PHYSICAL/PDF/EPUB/AUDIO之一")

	// ErrFormatDuplicate 同一图书的同一版本类型重复
	ErrFormatDuplicate = apperrors.New(apperrors.ErrCodeFormatDuplicate, "该图书已存在此版本类型")
)

// NewPartitionRangeError created_at年份超出配置的分区范围
// 带上越界年份和允许的范围，方便调用方定位问题
func NewPartitionRangeError(year int, years []int) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodePartitionRange,
		fmt.Sprintf("created_at年份%d超出分区范围%v", year, years))
}

// IsPartitionRangeError 判断是否为分区越界错误
func IsPartitionRangeError(err error) bool {
	appErr := apperrors.GetAppError(err)
	return appErr.Code == apperrors.ErrCodePartitionRange
}
