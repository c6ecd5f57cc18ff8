package jwt

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// TestGenerateAndParse 测试Token生成与解析的往返
func TestGenerateAndParse(t *testing.T) {
	manager := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(42, "reader@example.com", "书虫")
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("Token对不应为空")
	}
	if pair.ExpiresIn != int64((2 * time.Hour).Seconds()) {
		t.Errorf("过期时间错误: %d", pair.ExpiresIn)
	}

	// 解析Access Token，验证Claims
	claims, err := manager.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("解析Token失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID期望42，实际%d", claims.UserID)
	}
	if claims.Email != "reader@example.com" {
		t.Errorf("Email不一致: %s", claims.Email)
	}
	if claims.Issuer != "bookcatalog" {
		t.Errorf("Issuer不一致: %s", claims.Issuer)
	}
}

// TestParseToken_Invalid 测试非法Token的错误分类
func TestParseToken_Invalid(t *testing.T) {
	manager := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	// 格式错误
	if _, err := manager.ParseToken("not-a-token"); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}

	// 密钥不匹配
	other := NewManager("another-secret", 2*time.Hour, 7*24*time.Hour)
	pair, err := other.GenerateToken(1, "a@b.com", "n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := manager.ParseToken(pair.AccessToken); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}
}

// TestParseToken_Expired 测试过期Token
func TestParseToken_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Hour, 7*24*time.Hour) // 立即过期

	pair, err := manager.GenerateToken(1, "a@b.com", "n")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := manager.ParseToken(pair.AccessToken); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("期望ErrTokenExpired，实际%v", err)
	}
}

// TestRefreshAccessToken 测试用Refresh Token刷新Access Token
func TestRefreshAccessToken(t *testing.T) {
	manager := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(42, "reader@example.com", "书虫")
	if err != nil {
		t.Fatal(err)
	}

	newAccess, err := manager.RefreshAccessToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("刷新失败: %v", err)
	}

	claims, err := manager.ParseToken(newAccess)
	if err != nil {
		t.Fatalf("新Token解析失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID期望42，实际%d", claims.UserID)
	}

	// 非法Refresh Token刷新失败
	if _, err := manager.RefreshAccessToken("bad-token"); err == nil {
		t.Error("非法Refresh Token应该失败")
	}
}
