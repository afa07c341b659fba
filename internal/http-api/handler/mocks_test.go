package handler_test

import (
	"context"

	"ncnews/internal/http-api/dto"
	"ncnews/internal/http-api/handler"
	"ncnews/internal/http-api/middleware"
	"ncnews/internal/http-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// --- MOCK SERVICES ---

type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) ListArticles(ctx context.Context, q dto.ArticleListQuery) ([]models.ArticleListRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArticleListRow), args.Error(1)
}

func (m *MockArticleService) GetArticle(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleWithCount), args.Error(1)
}

func (m *MockArticleService) VoteArticle(ctx context.Context, id int64, delta int) (*models.Article, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleService) CreateArticle(ctx context.Context, in dto.CreateArticleDTO) (*models.ArticleWithCount, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleWithCount), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) GetArticleComments(ctx context.Context, articleID int64) ([]models.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, articleID int64, in dto.CreateCommentDTO) (*models.Comment, error) {
	args := m.Called(ctx, articleID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) VoteComment(ctx context.Context, commentID int64, delta int) (*models.Comment, error) {
	args := m.Called(ctx, commentID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockTopicService struct {
	mock.Mock
}

func (m *MockTopicService) GetAll(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topic), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// --- SETUP ---

type mocks struct {
	articles *MockArticleService
	comments *MockCommentService
	topics   *MockTopicService
	users    *MockUserService
}

func setupRouter() (*gin.Engine, mocks) {
	gin.SetMode(gin.TestMode)
	m := mocks{
		articles: new(MockArticleService),
		comments: new(MockCommentService),
		topics:   new(MockTopicService),
		users:    new(MockUserService),
	}

	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop()))
	r.NoRoute(middleware.NoRoute)

	api := r.Group("/api")
	articles := api.Group("/articles")
	handler.NewTopicHandler(m.topics).RegisterRoutes(api.Group("/topics"))
	handler.NewArticleHandler(m.articles).RegisterRoutes(articles)
	handler.NewCommentHandler(m.comments).RegisterRoutes(articles, api.Group("/comments"))
	handler.NewUserHandler(m.users).RegisterRoutes(api.Group("/users"))
	return r, m
}
