package repository

import (
	"context"
	"fmt"

	"ncnews/internal/http-api/dto"
	"ncnews/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	List(ctx context.Context, q dto.ArticleListQuery) ([]models.ArticleListRow, error)
	GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error)
	Exists(ctx context.Context, id int64) (bool, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error)
	Create(ctx context.Context, a *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

const articleColumns = "articles.article_id, articles.title, articles.topic, articles.author, " +
	"articles.body, articles.created_at, articles.votes"

// withCommentCount left-joins comments so articles without comments keep a zero count.
func (r *articleRepository) withCommentCount(ctx context.Context, extra string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("articles").
		Select(articleColumns + ", COUNT(comments.comment_id) AS comment_count" + extra).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}

// List returns one page of articles. total_count is a window over the grouped,
// filtered rows, so it is evaluated before LIMIT/OFFSET.
func (r *articleRepository) List(ctx context.Context, q dto.ArticleListQuery) ([]models.ArticleListRow, error) {
	list := make([]models.ArticleListRow, 0, pageCapacity(q.Limit))

	tx := r.withCommentCount(ctx, ", COUNT(*) OVER () AS total_count")
	if q.Topic != nil {
		tx = tx.Where("articles.topic = ?", *q.Topic)
	}

	err := tx.Order(q.OrderClause()).
		Limit(q.Limit).
		Offset(q.Offset()).
		Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return list, nil
}

// maxPrealloc bounds the slice reserved up front; limit itself is unbounded.
const maxPrealloc = 100

func pageCapacity(limit int) int {
	return max(0, min(limit, maxPrealloc))
}

// GetByID returns gorm.ErrRecordNotFound (wrapped) when the article does not exist.
func (r *articleRepository) GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	var a models.ArticleWithCount
	err := r.withCommentCount(ctx, "").
		Where("articles.article_id = ?", id).
		Take(&a).Error
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return &a, nil
}

func (r *articleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Where("article_id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check article %d: %w", id, err)
	}
	return n > 0, nil
}

// IncrementVotes applies a relative vote change and returns the updated row.
func (r *articleRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	var a models.Article
	res := r.db.WithContext(ctx).
		Model(&a).
		Clauses(clause.Returning{}).
		Where("article_id = ?", id).
		Update("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, fmt.Errorf("increment article %d votes: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("increment article %d votes: %w", id, gorm.ErrRecordNotFound)
	}
	return &a, nil
}

func (r *articleRepository) Create(ctx context.Context, a *models.Article) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	// GORM populates ArticleID, Votes and CreatedAt via RETURNING
	return nil
}
