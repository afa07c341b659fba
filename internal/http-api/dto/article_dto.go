package dto

// CreateArticleDTO for POST /api/articles
type CreateArticleDTO struct {
	Author string `json:"author" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Body   string `json:"body" binding:"required"`
	Topic  string `json:"topic" binding:"required"`
}

// CreateArticleKeys is the accepted key set of CreateArticleDTO.
var CreateArticleKeys = []string{"author", "title", "body", "topic"}

// VoteDTO for PATCH /api/articles/:article_id and PATCH /api/comments/:comment_id
type VoteDTO struct {
	IncVotes *int `json:"inc_votes" binding:"required"`
}
