package dto

// CreateCommentDTO for POST /api/articles/:article_id/comments
type CreateCommentDTO struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// CreateCommentKeys is the accepted key set of CreateCommentDTO.
var CreateCommentKeys = []string{"username", "body"}
