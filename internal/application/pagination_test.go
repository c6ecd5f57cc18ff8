package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageLimits_Normalize(t *testing.T) {
	limits := PageLimits{Default: 20, Max: 100}

	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"合法参数原样返回", 2, 50, 2, 50},
		{"页码小于1取1", 0, 20, 1, 20},
		{"负页码取1", -5, 20, 1, 20},
		{"pageSize为0取默认值", 1, 0, 1, 20},
		{"pageSize超上限截断", 1, 500, 1, 100},
		{"上限本身允许", 1, 100, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := limits.Normalize(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
}
