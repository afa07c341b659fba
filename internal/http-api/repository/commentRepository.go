package repository

import (
	"context"
	"fmt"

	"ncnews/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	IncrementVotes(ctx context.Context, commentID int64, delta int) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByArticle returns the article's comments, newest first.
func (r *commentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Order("comment_id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments for article %d: %w", articleID, err)
	}
	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// IncrementVotes applies a relative vote change and returns the updated row.
func (r *commentRepository) IncrementVotes(ctx context.Context, commentID int64, delta int) (*models.Comment, error) {
	var c models.Comment
	res := r.db.WithContext(ctx).
		Model(&c).
		Clauses(clause.Returning{}).
		Where("comment_id = ?", commentID).
		Update("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, fmt.Errorf("increment comment %d votes: %w", commentID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("increment comment %d votes: %w", commentID, gorm.ErrRecordNotFound)
	}
	return &c, nil
}

// Delete removes a comment; a missing row yields gorm.ErrRecordNotFound (wrapped).
func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	res := r.db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete comment %d: %w", commentID, gorm.ErrRecordNotFound)
	}
	return nil
}
