package errors

import (
	"errors"
	"fmt"
	"testing"
)

// TestAppError_Wrap 测试错误包装与解包
func TestAppError_Wrap(t *testing.T) {
	inner := errors.New("connection refused")
	wrapped := Wrap(inner, "数据库错误")

	if wrapped.Code != ErrCodeInternal {
		t.Errorf("包装错误的Code应为%d，实际%d", ErrCodeInternal, wrapped.Code)
	}

	// errors.Is能穿透到内部错误
	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is应能找到被包装的错误")
	}
}

// TestGetAppError 测试错误提取
func TestGetAppError(t *testing.T) {
	// AppError直接返回
	appErr := GetAppError(ErrUserNotFound)
	if appErr.Code != ErrCodeUserNotFound {
		t.Errorf("期望%d，实际%d", ErrCodeUserNotFound, appErr.Code)
	}

	// 被fmt.Errorf包装过的AppError也能提取
	wrapped := fmt.Errorf("查询失败: %w", ErrUserNotFound)
	appErr = GetAppError(wrapped)
	if appErr.Code != ErrCodeUserNotFound {
		t.Errorf("期望穿透包装提取到%d，实际%d", ErrCodeUserNotFound, appErr.Code)
	}

	// 普通error包装成Internal
	appErr = GetAppError(errors.New("some error"))
	if appErr.Code != ErrCodeInternal {
		t.Errorf("普通error应包装成%d，实际%d", ErrCodeInternal, appErr.Code)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(ErrInvalidToken) {
		t.Error("预定义错误应是AppError")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("普通error不是AppError")
	}
}
