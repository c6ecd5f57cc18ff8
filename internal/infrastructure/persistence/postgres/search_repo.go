package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/search"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// searchQuerier 单类型排名查询的PostgreSQL实现
// 设计说明：
// 1. 匹配谓词：search_vector @@ plainto_tsquery('english', ?)
//    ——plainto_tsquery把自由文本转为AND连接的词位，不解析查询语法
// 2. 相关度：ts_rank(search_vector, query)，使用默认权重标度
//    {D:0.1, C:0.2, B:0.4, A:1.0}；所有实体用同一套setweight标注，
//    rank跨类型可比
// 3. 排序：rank DESC → created_at DESC → id ASC，在SQL内完成，
//    调用方拿到的序列已排好
// 4. 空白查询串：返回全部可见记录，rank=0，按created_at DESC排序
// 5. 分类表没有created_at（永久性分类体系），排序退化为rank DESC → id ASC
type searchQuerier struct {
	db *gorm.DB
}

// NewSearchQuerier 创建搜索查询器
func NewSearchQuerier(db *gorm.DB) search.Querier {
	return &searchQuerier{db: db}
}

// Search 对单个实体类型执行排名搜索
func (q *searchQuerier) Search(ctx context.Context, typ search.EntityType, query string, limit, offset int) ([]search.Hit, int64, error) {
	switch typ {
	case search.TypeBook:
		return q.searchBooks(ctx, query, limit, offset)
	case search.TypeAuthor:
		return q.searchAuthors(ctx, query, limit, offset)
	case search.TypePublisher:
		return q.searchPublishers(ctx, query, limit, offset)
	case search.TypeCategory:
		return q.searchCategories(ctx, query, limit, offset)
	case search.TypeComment:
		return q.searchComments(ctx, query, limit, offset)
	}
	return nil, 0, apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的搜索类型: "+string(typ))
}

// 带rank的扫描行：embedded让GORM把列映射回数据模型字段

type rankedBook struct {
	BookModel `gorm:"embedded"`
	Rank      float64 `gorm:"column:rank"`
}

type rankedAuthor struct {
	AuthorModel `gorm:"embedded"`
	Rank        float64 `gorm:"column:rank"`
}

type rankedPublisher struct {
	PublisherModel `gorm:"embedded"`
	Rank           float64 `gorm:"column:rank"`
}

type rankedCategory struct {
	CategoryModel `gorm:"embedded"`
	Rank          float64 `gorm:"column:rank"`
}

type rankedComment struct {
	CommentModel `gorm:"embedded"`
	Rank         float64 `gorm:"column:rank"`
}

func (q *searchQuerier) searchBooks(ctx context.Context, query string, limit, offset int) ([]search.Hit, int64, error) {
	base := func() *gorm.DB {
		db := dbFrom(ctx, q.db).WithContext(ctx).Table("books").Where("is_deleted = FALSE")
		if query != "" {
			db = db.Where("search_vector @@ plainto_tsquery('english', ?)", query)
		}
		return db
	}

	total, err := countMatches(base())
	if err != nil {
		return nil, 0, err
	}

	var rows []rankedBook
	if err := applyRankedSelect(base(), query, "created_at DESC, id ASC").
		Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "搜索图书失败")
	}

	hits := make([]search.Hit, len(rows))
	for i := range rows {
		hits[i] = search.Hit{
			Type:      search.TypeBook,
			Rank:      rows[i].Rank,
			CreatedAt: rows[i].CreatedAt,
			ID:        rows[i].ID,
			Data:      toBookEntity(&rows[i].BookModel),
		}
	}
	return hits, total, nil
}

func (q *searchQuerier) searchAuthors(ctx context.Context, query string, limit, offset int) ([]search.Hit, int64, error) {
	base := func() *gorm.DB {
		db := dbFrom(ctx, q.db).WithContext(ctx).Table("authors").Where("is_deleted = FALSE")
		if query != "" {
			db = db.Where("search_vector @@ plainto_tsquery('english', ?)", query)
		}
		return db
	}

	total, err := countMatches(base())
	if err != nil {
		return nil, 0, err
	}

	var rows []rankedAuthor
	if err := applyRankedSelect(base(), query, "created_at DESC, id ASC").
		Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "搜索作者失败")
	}

	hits := make([]search.Hit, len(rows))
	for i := range rows {
		hits[i] = search.Hit{
			Type:      search.TypeAuthor,
			Rank:      rows[i].Rank,
			CreatedAt: rows[i].CreatedAt,
			ID:        rows[i].ID,
			Data:      toAuthorEntity(&rows[i].AuthorModel),
		}
	}
	return hits, total, nil
}

func (q *searchQuerier) searchPublishers(ctx context.Context, query string, limit, offset int) ([]search.Hit, int64, error) {
	base := func() *gorm.DB {
		db := dbFrom(ctx, q.db).WithContext(ctx).Table("publishers").Where("is_deleted = FALSE")
		if query != "" {
			db = db.Where("search_vector @@ plainto_tsquery('english', ?)", query)
		}
		return db
	}

	total, err := countMatches(base())
	if err != nil {
		return nil, 0, err
	}

	var rows []rankedPublisher
	if err := applyRankedSelect(base(), query, "created_at DESC, id ASC").
		Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "搜索出版社失败")
	}

	hits := make([]search.Hit, len(rows))
	for i := range rows {
		hits[i] = search.Hit{
			Type:      search.TypePublisher,
			Rank:      rows[i].Rank,
			CreatedAt: rows[i].CreatedAt,
			ID:        rows[i].ID,
			Data:      toPublisherEntity(&rows[i].PublisherModel),
		}
	}
	return hits, total, nil
}

// searchCategories 分类没有软删除和created_at：不拼可见性谓词，
// 平局决胜直接用id
func (q *searchQuerier) searchCategories(ctx context.Context, query string, limit, offset int) ([]search.Hit, int64, error) {
	base := func() *gorm.DB {
		db := dbFrom(ctx, q.db).WithContext(ctx).Table("categories")
		if query != "" {
			db = db.Where("search_vector @@ plainto_tsquery('english', ?)", query)
		}
		return db
	}

	total, err := countMatches(base())
	if err != nil {
		return nil, 0, err
	}

	var rows []rankedCategory
	if err := applyRankedSelect(base(), query, "id ASC").
		Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "搜索分类失败")
	}

	hits := make([]search.Hit, len(rows))
	for i := range rows {
		hits[i] = search.Hit{
			Type: search.TypeCategory,
			Rank: rows[i].Rank,
			ID:   rows[i].ID,
			Data: toCategoryEntity(&rows[i].CategoryModel),
		}
	}
	return hits, total, nil
}

func (q *searchQuerier) searchComments(ctx context.Context, query string, limit, offset int) ([]search.Hit, int64, error) {
	base := func() *gorm.DB {
		db := dbFrom(ctx, q.db).WithContext(ctx).Table("comments").Where("is_deleted = FALSE")
		if query != "" {
			db = db.Where("search_vector @@ plainto_tsquery('english', ?)", query)
		}
		return db
	}

	total, err := countMatches(base())
	if err != nil {
		return nil, 0, err
	}

	var rows []rankedComment
	if err := applyRankedSelect(base(), query, "created_at DESC, id ASC").
		Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "搜索评论失败")
	}

	hits := make([]search.Hit, len(rows))
	for i := range rows {
		hits[i] = search.Hit{
			Type:      search.TypeComment,
			Rank:      rows[i].Rank,
			CreatedAt: rows[i].CreatedAt,
			ID:        rows[i].ID,
			Data:      toCommentEntity(&rows[i].CommentModel),
		}
	}
	return hits, total, nil
}

// countMatches 统计匹配总数（不含分页）
func countMatches(db *gorm.DB) (int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计搜索结果失败")
	}
	return total, nil
}

// applyRankedSelect 拼接rank投影与排序
// 非空查询：rank=ts_rank(...)，按rank DESC优先；
// 空白查询：rank=0，直接按tieBreak排序
func applyRankedSelect(db *gorm.DB, query, tieBreak string) *gorm.DB {
	if query == "" {
		return db.Select("*, 0::float8 AS rank").Order(tieBreak)
	}
	return db.
		Select("*, ts_rank(search_vector, plainto_tsquery('english', ?)) AS rank", query).
		Order("rank DESC, " + tieBreak)
}
