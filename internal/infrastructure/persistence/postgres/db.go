package postgres

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// NewDB 初始化PostgreSQL连接
// 设计说明：
// 1. TranslateError=true：驱动层错误翻译为GORM统一错误（如ErrDuplicatedKey）
// 2. 连接池参数从配置读取，零值使用保守默认
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接池失败: %w", err)
	}

	maxOpen := cfg.Database.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 50
	}
	maxIdle := cfg.Database.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 10
	}
	maxLifetime := cfg.Database.ConnMaxLifetime
	if maxLifetime <= 0 {
		maxLifetime = time.Hour
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	logger.L().Info("数据库连接成功",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("dbname", cfg.Database.DBName))

	return db, nil
}

// Migrate 执行数据库迁移
// 分两步：
// 1. 普通表走AutoMigrate
// 2. 分区表（books/book_formats）和GIN索引走原生DDL——GORM的AutoMigrate
//    不理解PARTITION BY RANGE，必须手工建表
func Migrate(db *gorm.DB, partitionYears []int) error {
	if err := db.AutoMigrate(
		&AuthorModel{},
		&PublisherModel{},
		&CategoryModel{},
		&CommentModel{},
		&UserModel{},
	); err != nil {
		return fmt.Errorf("迁移普通表失败: %w", err)
	}

	if err := migratePartitionedTables(db, partitionYears); err != nil {
		return fmt.Errorf("迁移分区表失败: %w", err)
	}

	if err := createSearchIndexes(db); err != nil {
		return fmt.Errorf("创建搜索索引失败: %w", err)
	}

	logger.L().Info("数据库迁移完成", zap.Ints("partition_years", partitionYears))
	return nil
}

// createSearchIndexes 为所有search_vector列创建GIN索引
func createSearchIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_authors_search_vector ON authors USING GIN (search_vector)`,
		`CREATE INDEX IF NOT EXISTS idx_publishers_search_vector ON publishers USING GIN (search_vector)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_search_vector ON categories USING GIN (search_vector)`,
		`CREATE INDEX IF NOT EXISTS idx_books_search_vector ON books USING GIN (search_vector)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_search_vector ON comments USING GIN (search_vector)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
