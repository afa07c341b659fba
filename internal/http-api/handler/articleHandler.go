package handler

import (
	"net/http"

	"ncnews/internal/http-api/dto"
	"ncnews/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	svc service.ArticleService
}

func NewArticleHandler(svc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:article_id", h.Get)
	rg.PATCH("/:article_id", h.Vote)
}

// List handles GET /api/articles?sort_by=&order=&topic=&limit=&p=
func (h *ArticleHandler) List(c *gin.Context) {
	q, err := dto.ParseArticleListQuery(c.Request.URL.Query())
	if err != nil {
		_ = c.Error(err)
		return
	}

	articles, err := h.svc.ListArticles(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Get handles GET /api/articles/:article_id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Vote handles PATCH /api/articles/:article_id with {inc_votes}
func (h *ArticleHandler) Vote(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var in dto.VoteDTO
	if err := bindVote(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.svc.VoteArticle(c.Request.Context(), id, *in.IncVotes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var in dto.CreateArticleDTO
	if err := bindStrict(c, dto.CreateArticleKeys, &in); err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.svc.CreateArticle(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}
