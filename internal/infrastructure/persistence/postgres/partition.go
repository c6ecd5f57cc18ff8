package postgres

import (
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// 分区表DDL
// 设计说明：
// 1. books/book_formats按created_at做RANGE分区，每个配置年份一个物理分区
//    （books_2024覆盖[2024-01-01, 2025-01-01)）
// 2. 不建DEFAULT分区：年份越界的插入在应用层被分区路由器拒绝，
//    数据库层越界插入也会直接报错，绝不静默落入兜底分区
// 3. 主键必须包含分区键，所以是复合主键(id, created_at)；
//    id由共享的IDENTITY序列生成，跨分区全局递增
// 4. book_formats的(book_id, format_type)唯一性无法用全局唯一索引表达
//    （PostgreSQL要求唯一索引包含分区键），由仓储在写事务内校验

const createBooksTableSQL = `
CREATE TABLE IF NOT EXISTS books (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY,
    title VARCHAR(500) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price BIGINT NOT NULL,
    publication_year INT,
    available BOOLEAN NOT NULL DEFAULT TRUE,
    author_id BIGINT NOT NULL,
    publisher_id BIGINT,
    category_id BIGINT,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
    deleted_at TIMESTAMPTZ,
    search_vector tsvector,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (id, created_at)
) PARTITION BY RANGE (created_at)`

const createBookFormatsTableSQL = `
CREATE TABLE IF NOT EXISTS book_formats (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY,
    book_id BIGINT NOT NULL,
    format_type VARCHAR(20) NOT NULL,
    price BIGINT NOT NULL,
    stock INT NOT NULL DEFAULT 0,
    is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
    deleted_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (id, created_at)
) PARTITION BY RANGE (created_at)`

// migratePartitionedTables 创建分区父表与按年份的子分区
func migratePartitionedTables(db *gorm.DB, years []int) error {
	if err := db.Exec(createBooksTableSQL).Error; err != nil {
		return fmt.Errorf("创建books父表失败: %w", err)
	}
	if err := db.Exec(createBookFormatsTableSQL).Error; err != nil {
		return fmt.Errorf("创建book_formats父表失败: %w", err)
	}

	sorted := make([]int, len(years))
	copy(sorted, years)
	sort.Ints(sorted)

	for _, year := range sorted {
		for _, parent := range []string{"books", "book_formats"} {
			stmt := fmt.Sprintf(
				`CREATE TABLE IF NOT EXISTS %s_%d PARTITION OF %s FOR VALUES FROM ('%d-01-01') TO ('%d-01-01')`,
				parent, year, parent, year, year+1)
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("创建分区%s_%d失败: %w", parent, year, err)
			}
		}
	}

	// 过滤条件索引（分区表索引会自动级联到所有子分区）
	indexStmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_books_publisher_id ON books (publisher_id)`,
		`CREATE INDEX IF NOT EXISTS idx_books_category_id ON books (category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_books_is_deleted ON books (is_deleted)`,
		`CREATE INDEX IF NOT EXISTS idx_book_formats_book_id ON book_formats (book_id)`,
		`CREATE INDEX IF NOT EXISTS idx_book_formats_is_deleted ON book_formats (is_deleted)`,
	}
	for _, stmt := range indexStmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
