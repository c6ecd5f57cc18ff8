// Package application 应用层：编排领域服务、处理DTO转换
package application

// PageLimits 分页参数的默认值与上限（从配置注入）
type PageLimits struct {
	Default int
	Max     int
}

// Normalize 规范化分页参数
// page<1取1；pageSize<1取默认值；超过上限截断到上限
func (l PageLimits) Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = l.Default
	}
	if pageSize > l.Max {
		pageSize = l.Max
	}
	return page, pageSize
}

// TotalPages 计算总页数
func TotalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
