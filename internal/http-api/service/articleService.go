package service

import (
	"context"

	"ncnews/internal/http-api/dto"
	"ncnews/internal/http-api/models"
	"ncnews/internal/http-api/repository"
)

type ArticleService interface {
	ListArticles(ctx context.Context, q dto.ArticleListQuery) ([]models.ArticleListRow, error)
	GetArticle(ctx context.Context, id int64) (*models.ArticleWithCount, error)
	VoteArticle(ctx context.Context, id int64, delta int) (*models.Article, error)
	CreateArticle(ctx context.Context, in dto.CreateArticleDTO) (*models.ArticleWithCount, error)
}

type articleService struct {
	repo repository.ArticleRepository
}

func NewArticleService(repo repository.ArticleRepository) ArticleService {
	return &articleService{repo: repo}
}

func (s *articleService) ListArticles(ctx context.Context, q dto.ArticleListQuery) ([]models.ArticleListRow, error) {
	return s.repo.List(ctx, q)
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgArticleNotFound)
	}
	return a, nil
}

func (s *articleService) VoteArticle(ctx context.Context, id int64, delta int) (*models.Article, error) {
	a, err := s.repo.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, notFoundAs(err, msgArticleNotFound)
	}
	return a, nil
}

// CreateArticle inserts the article; unknown author or topic surfaces as a foreign key violation.
func (s *articleService) CreateArticle(ctx context.Context, in dto.CreateArticleDTO) (*models.ArticleWithCount, error) {
	a := &models.Article{
		Author: in.Author,
		Title:  in.Title,
		Body:   in.Body,
		Topic:  in.Topic,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	// a new article has no comments yet
	return &models.ArticleWithCount{Article: *a, CommentCount: 0}, nil
}
