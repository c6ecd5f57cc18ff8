package search

import (
	"time"
)

// EntityType 可搜索的实体类型
type EntityType string

const (
	TypeBook      EntityType = "book"
	TypeAuthor    EntityType = "author"
	TypePublisher EntityType = "publisher"
	TypeCategory  EntityType = "category"
	TypeComment   EntityType = "comment"
)

// IsValid 校验实体类型是否可搜索
func (t EntityType) IsValid() bool {
	switch t {
	case TypeBook, TypeAuthor, TypePublisher, TypeCategory, TypeComment:
		return true
	}
	return false
}

// GlobalTypes 全局搜索覆盖的实体类型
// 评论可以单类型搜索，但不参与全局合并
var GlobalTypes = []EntityType{TypeBook, TypeAuthor, TypePublisher, TypeCategory}

// Hit 单条搜索结果
// 设计说明：
// 1. Rank是跨实体类型可比的相关度分值（各类型使用同一套权重标度计算）
// 2. CreatedAt/ID用于稳定的平局决胜：rank降序 → created_at降序 → id升序
// 3. Data承载该类型的实体（*book.Book、*author.Author等），HTTP层负责序列化
type Hit struct {
	Type      EntityType  `json:"type"`
	Rank      float64     `json:"rank"`
	CreatedAt time.Time   `json:"-"`
	ID        uint        `json:"-"`
	Data      interface{} `json:"data"`
}

// Params 搜索参数
type Params struct {
	Query    string // 查询串（空白串=返回全部可见记录，不排名）
	Page     int
	PageSize int
}
