package handler

import (
	"net/http"

	"ncnews/internal/http-api/dto"
	"ncnews/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment routes under both /api/articles and /api/comments
func (h *CommentHandler) RegisterRoutes(articles, comments *gin.RouterGroup) {
	articleComments := articles.Group("/:article_id/comments")
	{
		articleComments.GET("", h.ListByArticle)
		articleComments.POST("", h.Create)
	}

	comments.PATCH("/:comment_id", h.Vote)
	comments.DELETE("/:comment_id", h.Delete)
}

// ListByArticle retrieves all comments for an article
// GET /api/articles/:article_id/comments
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID, err := pathID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.commentService.GetArticleComments(c.Request.Context(), articleID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create creates a new comment for an article
// POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	articleID, err := pathID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.CreateCommentDTO
	if err := bindStrict(c, dto.CreateCommentKeys, &req); err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), articleID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Vote applies {inc_votes} to a comment
// PATCH /api/comments/:comment_id
func (h *CommentHandler) Vote(c *gin.Context) {
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.VoteDTO
	if err := bindVote(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.VoteComment(c.Request.Context(), commentID, *req.IncVotes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete deletes a comment
// DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
