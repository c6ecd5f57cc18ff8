package book

import (
	"time"
)

// Book 图书实体（聚合根）
// DDD设计说明：
// 1. Book是图书聚合的根实体，BookFormat作为聚合内实体归属于Book
// 2. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 3. CreatedAt是分区键：插入时决定物理分区，之后不可修改
// 4. IsDeleted/DeletedAt是软删除标志，默认读路径排除已删除记录
type Book struct {
	ID              uint
	Title           string
	Description     string
	Price           int64 // 价格（单位：分，1元=100分）
	PublicationYear int
	Available       bool
	AuthorID        uint
	PublisherID     *uint
	CategoryID      *uint
	IsDeleted       bool
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书（工厂方法）
// createdAt为零值时使用当前时间；非零值允许调用方指定（决定分区归属）
func NewBook(title, description string, price int64, publicationYear int, available bool, authorID uint, publisherID, categoryID *uint, createdAt time.Time) *Book {
	now := time.Now()
	if createdAt.IsZero() {
		createdAt = now
	}
	return &Book{
		Title:           title,
		Description:     description,
		Price:           price,
		PublicationYear: publicationYear,
		Available:       available,
		AuthorID:        authorID,
		PublisherID:     publisherID,
		CategoryID:      categoryID,
		CreatedAt:       createdAt,
		UpdatedAt:       now,
	}
}

// UpdateInfo 更新图书基本信息（空字段保持不变，CreatedAt永不改变）
func (b *Book) UpdateInfo(title, description string, publicationYear int) {
	if title != "" {
		b.Title = title
	}
	if description != "" {
		b.Description = description
	}
	if publicationYear != 0 {
		b.PublicationYear = publicationYear
	}
	b.UpdatedAt = time.Now()
}

// UpdatePrice 更新价格（领域行为）
// 业务规则：价格必须>0
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// SetAvailable 上架/下架
func (b *Book) SetAvailable(available bool) {
	b.Available = available
	b.UpdatedAt = time.Now()
}

// =========================================
// BookFormat 图书版本（聚合内实体）
// =========================================

// FormatType 版本类型
type FormatType string

const (
	FormatPhysical FormatType = "PHYSICAL"
	FormatPDF      FormatType = "PDF"
	FormatEPUB     FormatType = "EPUB"
	FormatAudio    FormatType = "AUDIO"
)

// IsValid 校验版本类型是否合法
func (f FormatType) IsValid() bool {
	switch f {
	case FormatPhysical, FormatPDF, FormatEPUB, FormatAudio:
		return true
	}
	return false
}

// Format 图书版本实体
// 同一图书的同一版本类型唯一（数据库层保证）；与Book使用同一套分区规则
type Format struct {
	ID         uint
	BookID     uint
	FormatType FormatType
	Price      int64 // 覆盖Book.Price的版本价格（分）
	Stock      int
	IsDeleted  bool
	DeletedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewFormat 创建图书版本（工厂方法）
func NewFormat(bookID uint, formatType FormatType, price int64, stock int, createdAt time.Time) *Format {
	now := time.Now()
	if createdAt.IsZero() {
		createdAt = now
	}
	return &Format{
		BookID:     bookID,
		FormatType: formatType,
		Price:      price,
		Stock:      stock,
		CreatedAt:  createdAt,
		UpdatedAt:  now,
	}
}

// UpdatePricing 更新版本价格与库存
// 业务规则：价格必须>0，库存不能为负
func (f *Format) UpdatePricing(price int64, stock int) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	f.Price = price
	f.Stock = stock
	f.UpdatedAt = time.Now()
	return nil
}
