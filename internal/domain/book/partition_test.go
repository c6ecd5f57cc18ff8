package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// TestPartitionRouter_Validate 测试分区范围校验
func TestPartitionRouter_Validate(t *testing.T) {
	router := NewPartitionRouter([]int{2023, 2024, 2025})

	t.Run("范围内年份通过", func(t *testing.T) {
		assert.NoError(t, router.Validate(date(2023, 1, 1)))
		assert.NoError(t, router.Validate(date(2024, 6, 15)))
		assert.NoError(t, router.Validate(date(2025, 12, 31)))
	})

	t.Run("越界年份拒绝", func(t *testing.T) {
		err := router.Validate(date(2022, 12, 31))
		require.Error(t, err, "2022不在分区范围内")
		assert.True(t, IsPartitionRangeError(err))

		err = router.Validate(date(2026, 1, 1))
		require.Error(t, err, "2026不在分区范围内")
		assert.True(t, IsPartitionRangeError(err))
	})

	t.Run("错误码固定", func(t *testing.T) {
		err := router.Validate(date(1999, 1, 1))
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodePartitionRange, appErr.Code)
	})

	t.Run("年份按UTC归属", func(t *testing.T) {
		// 东八区2026-01-01 07:00 = UTC 2025-12-31 23:00，应落在2025分区
		cst := time.FixedZone("CST", 8*3600)
		boundary := time.Date(2026, 1, 1, 7, 0, 0, 0, cst)
		assert.NoError(t, router.Validate(boundary))
	})
}

// TestPartitionRouter_Route 测试分区路由
func TestPartitionRouter_Route(t *testing.T) {
	router := NewPartitionRouter([]int{2024, 2023, 2025}) // 故意乱序

	suffix, err := router.Route(date(2024, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, "2024", suffix)

	_, err = router.Route(date(2020, 3, 1))
	assert.True(t, IsPartitionRangeError(err))
}

// TestPartitionRouter_Years 返回升序副本，修改不影响内部状态
func TestPartitionRouter_Years(t *testing.T) {
	router := NewPartitionRouter([]int{2025, 2023, 2024})

	years := router.Years()
	assert.Equal(t, []int{2023, 2024, 2025}, years)

	years[0] = 1900
	assert.Equal(t, []int{2023, 2024, 2025}, router.Years(), "外部修改不应影响路由器")
}
