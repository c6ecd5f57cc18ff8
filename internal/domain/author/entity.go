package author

import (
	"time"
)

// Author 作者实体（聚合根）
// 设计说明：
// 1. 姓与名分开存储，FullName()拼接展示
// 2. IsDeleted/DeletedAt是软删除标志，所有默认读路径排除已删除记录
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type Author struct {
	ID          uint
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	Bio         string
	IsDeleted   bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAuthor 创建新作者（工厂方法）
func NewAuthor(firstName, lastName, email, bio string, dateOfBirth, dateOfDeath *time.Time) *Author {
	now := time.Now()
	return &Author{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Bio:         bio,
		DateOfBirth: dateOfBirth,
		DateOfDeath: dateOfDeath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FullName 作者全名
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// CurrentAge 当前年龄（在世按今天计算，已故按去世日期计算）
// 出生日期未知时返回nil
func (a *Author) CurrentAge() *int {
	if a.DateOfBirth == nil {
		return nil
	}

	end := time.Now()
	if a.DateOfDeath != nil {
		end = *a.DateOfDeath
	}

	age := end.Year() - a.DateOfBirth.Year()
	// 生日还没到，减1
	if end.Month() < a.DateOfBirth.Month() ||
		(end.Month() == a.DateOfBirth.Month() && end.Day() < a.DateOfBirth.Day()) {
		age--
	}
	return &age
}

// UpdateInfo 更新作者信息（领域行为，空字段保持不变）
func (a *Author) UpdateInfo(firstName, lastName, email, bio string) {
	if firstName != "" {
		a.FirstName = firstName
	}
	if lastName != "" {
		a.LastName = lastName
	}
	if email != "" {
		a.Email = email
	}
	if bio != "" {
		a.Bio = bio
	}
	a.UpdatedAt = time.Now()
}
