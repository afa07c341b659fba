// Package httpapi assembles the NC News HTTP API.
package httpapi

import (
	"net/http"
	"time"

	"ncnews/internal/http-api/handler"
	"ncnews/internal/http-api/middleware"
	"ncnews/internal/http-api/repository"
	"ncnews/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Services struct {
	Topics   service.TopicService
	Articles service.ArticleService
	Comments service.CommentService
	Users    service.UserService
}

// NewServices wires repositories over db into services.
func NewServices(db *gorm.DB) Services {
	topicRepo := repository.NewTopicRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)

	return Services{
		Topics:   service.NewTopicService(topicRepo),
		Articles: service.NewArticleService(articleRepo),
		Comments: service.NewCommentService(commentRepo, articleRepo, userRepo),
		Users:    service.NewUserService(userRepo),
	}
}

type RouterOptions struct {
	Logger         *zap.Logger
	DB             handler.Pinger
	RequestTimeout time.Duration

	// Metrics and MetricsHandler are both nil when metrics are disabled.
	Metrics        *middleware.Metrics
	MetricsHandler http.Handler
}

func NewRouter(svc Services, opts RouterOptions) (*gin.Engine, error) {
	apiHandler, err := handler.NewAPIHandler()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Handler())
	}
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	r.Use(middleware.ErrorHandler(opts.Logger))
	r.NoRoute(middleware.NoRoute)

	if opts.DB != nil {
		r.GET("/check-conn", handler.NewHealthHandler(opts.DB).CheckConn)
	}
	if opts.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	api := r.Group("/api")
	apiHandler.RegisterRoutes(api)

	articles := api.Group("/articles")
	comments := api.Group("/comments")
	handler.NewTopicHandler(svc.Topics).RegisterRoutes(api.Group("/topics"))
	handler.NewArticleHandler(svc.Articles).RegisterRoutes(articles)
	handler.NewCommentHandler(svc.Comments).RegisterRoutes(articles, comments)
	handler.NewUserHandler(svc.Users).RegisterRoutes(api.Group("/users"))

	return r, nil
}
