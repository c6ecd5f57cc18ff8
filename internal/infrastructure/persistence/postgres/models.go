package postgres

import (
	"time"
)

// GORM数据模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag；domain层的实体不依赖GORM
// 2. 软删除统一为is_deleted布尔标志+deleted_at时间戳（不用gorm.DeletedAt：
//    恢复操作需要显式的双向翻转，且可见性谓词必须在读路径上显式拼接）
// 3. search_vector是加权tsvector列，仓储在每次写入的同一事务内用
//    setweight(to_tsvector(...))同步重算；GORM侧只读（->;<-:false）
// 4. books/book_formats按created_at年份做RANGE分区，建表DDL在partition.go，
//    不走AutoMigrate（分区表需要复合主键(id, created_at)）

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID           uint       `gorm:"primaryKey"`
	FirstName    string     `gorm:"size:255;not null"`
	LastName     string     `gorm:"size:255;not null"`
	Email        string     `gorm:"size:100"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	DateOfDeath  *time.Time `gorm:"type:date"`
	Bio          string     `gorm:"type:text"`
	IsDeleted    bool       `gorm:"index;not null;default:false"`
	DeletedAt    *time.Time
	SearchVector string `gorm:"type:tsvector;->;<-:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// PublisherModel GORM出版社模型
type PublisherModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	Address      string `gorm:"type:text"`
	Email        string `gorm:"size:100"`
	Phone        string `gorm:"size:20"`
	Website      string `gorm:"size:500"`
	IsDeleted    bool   `gorm:"index;not null;default:false"`
	DeletedAt    *time.Time
	SearchVector string `gorm:"type:tsvector;->;<-:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// CategoryModel GORM分类模型
// 分类是永久性分类体系：没有软删除字段
type CategoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null;index"`
	Description  string `gorm:"type:text"`
	ParentID     *uint  `gorm:"index"`
	SearchVector string `gorm:"type:tsvector;->;<-:false"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型（分区表：PARTITION BY RANGE (created_at)）
// 复合主键(id, created_at)：PostgreSQL要求分区表主键包含分区键
type BookModel struct {
	ID              uint      `gorm:"primaryKey"`
	Title           string    `gorm:"size:500;not null"`
	Description     string    `gorm:"type:text"`
	Price           int64     `gorm:"not null"`
	PublicationYear int       `gorm:""`
	Available       bool      `gorm:"not null;default:true"`
	AuthorID        uint      `gorm:"index;not null"`
	PublisherID     *uint     `gorm:"index"`
	CategoryID      *uint     `gorm:"index"`
	IsDeleted       bool      `gorm:"index;not null;default:false"`
	DeletedAt       *time.Time
	SearchVector    string    `gorm:"type:tsvector;->;<-:false"`
	CreatedAt       time.Time `gorm:"primaryKey"`
	UpdatedAt       time.Time
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookFormatModel GORM图书版本模型（与books同一套分区规则）
type BookFormatModel struct {
	ID           uint   `gorm:"primaryKey"`
	BookID       uint   `gorm:"index;not null"`
	FormatType   string `gorm:"size:20;not null"`
	Price        int64  `gorm:"not null"`
	Stock        int    `gorm:"not null;default:0"`
	IsDeleted    bool   `gorm:"index;not null;default:false"`
	DeletedAt    *time.Time
	CreatedAt    time.Time `gorm:"primaryKey"`
	UpdatedAt    time.Time
}

// TableName 指定表名
func (BookFormatModel) TableName() string {
	return "book_formats"
}

// CommentModel GORM评论模型
type CommentModel struct {
	ID           uint   `gorm:"primaryKey"`
	BookID       uint   `gorm:"index;not null"`
	UserID       uint   `gorm:"index;not null"`
	ParentID     *uint  `gorm:"index"`
	Content      string `gorm:"type:text;not null"`
	IsDeleted    bool   `gorm:"index;not null;default:false"`
	DeletedAt    *time.Time
	SearchVector string `gorm:"type:tsvector;->;<-:false"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName 指定表名
func (CommentModel) TableName() string {
	return "comments"
}

// UserModel GORM用户模型
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:100;not null"`
	Password  string `gorm:"size:255;not null"`
	Nickname  string `gorm:"size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}
