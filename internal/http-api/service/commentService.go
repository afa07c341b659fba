package service

import (
	"context"

	"ncnews/internal/http-api/dto"
	"ncnews/internal/http-api/models"
	"ncnews/internal/http-api/repository"
)

type CommentService interface {
	GetArticleComments(ctx context.Context, articleID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, articleID int64, in dto.CreateCommentDTO) (*models.Comment, error)
	VoteComment(ctx context.Context, commentID int64, delta int) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

// GetArticleComments distinguishes a missing article (not found) from an article without comments (empty list).
func (s *commentService) GetArticleComments(ctx context.Context, articleID int64) ([]models.Comment, error) {
	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrArticleNotFound
	}

	return s.commentRepo.ListByArticle(ctx, articleID)
}

// CreateComment checks the article and the author before inserting.
// The checks and the insert are separate statements.
func (s *commentService) CreateComment(ctx context.Context, articleID int64, in dto.CreateCommentDTO) (*models.Comment, error) {
	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrArticleNotFound
	}

	known, err := s.userRepo.Exists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, ErrInvalidUsername
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Author:    in.Username,
		Body:      in.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) VoteComment(ctx context.Context, commentID int64, delta int) (*models.Comment, error) {
	c, err := s.commentRepo.IncrementVotes(ctx, commentID, delta)
	if err != nil {
		return nil, notFoundAs(err, msgCommentNotFound)
	}
	return c, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return notFoundAs(err, msgCommentNotFound)
	}
	return nil
}
