package dto

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"ncnews/internal/apperr"
)

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
	DefaultPage   = 1
)

var (
	ErrInvalidQuery  = apperr.InvalidQuery("Invalid query.. sorry!!!")
	ErrInvalidSortBy = apperr.InvalidQuery("Invalid sort_by query.. sorry!!!")
	ErrInvalidOrder  = apperr.InvalidQuery("Invalid order query.. sorry!!!")
	ErrInvalidLimit  = apperr.InvalidQuery("Invalid limit query.. sorry!!!")
	ErrInvalidPage   = apperr.InvalidQuery("Invalid p query.. sorry!!!")
)

var allowedListKeys = map[string]bool{
	"sort_by": true,
	"order":   true,
	"topic":   true,
	"limit":   true,
	"p":       true,
}

// sortColumns maps accepted sort_by values to qualified column identifiers.
var sortColumns = map[string]string{
	"article_id": "articles.article_id",
	"title":      "articles.title",
	"topic":      "articles.topic",
	"author":     "articles.author",
	"body":       "articles.body",
	"created_at": "articles.created_at",
	"votes":      "articles.votes",
}

var sortDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// ArticleListQuery is a validated GET /api/articles query.
type ArticleListQuery struct {
	SortBy string
	Order  string
	Topic  *string
	Limit  int
	Page   int
}

// Offset is the number of rows skipped before the requested page.
func (q ArticleListQuery) Offset() int {
	return q.Limit * (q.Page - 1)
}

// OrderClause renders the ORDER BY expression from the allow-listed identifiers only.
// article_id breaks ties so pages are reproducible.
func (q ArticleListQuery) OrderClause() string {
	col := sortColumns[q.SortBy]
	dir := sortDirections[q.Order]
	if q.SortBy == "article_id" {
		return col + " " + dir
	}
	return col + " " + dir + ", articles.article_id " + dir
}

// ParseArticleListQuery validates raw query values in a fixed order: keys, sort_by, order, limit, p.
func ParseArticleListQuery(values url.Values) (ArticleListQuery, error) {
	q := ArticleListQuery{
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
		Limit:  DefaultLimit,
		Page:   DefaultPage,
	}

	for key := range values {
		if !allowedListKeys[key] {
			return ArticleListQuery{}, ErrInvalidQuery
		}
	}

	if values.Has("sort_by") {
		sortBy := values.Get("sort_by")
		if _, ok := sortColumns[sortBy]; !ok {
			return ArticleListQuery{}, ErrInvalidSortBy
		}
		q.SortBy = sortBy
	}

	if values.Has("order") {
		order := strings.ToLower(values.Get("order"))
		if _, ok := sortDirections[order]; !ok {
			return ArticleListQuery{}, ErrInvalidOrder
		}
		q.Order = order
	}

	if values.Has("limit") {
		limit, ok := positiveInt(values.Get("limit"))
		if !ok {
			return ArticleListQuery{}, ErrInvalidLimit
		}
		q.Limit = limit
	}

	if values.Has("p") {
		page, ok := positiveInt(values.Get("p"))
		// the offset limit*(p-1) must fit in an int
		if !ok || page-1 > math.MaxInt/q.Limit {
			return ArticleListQuery{}, ErrInvalidPage
		}
		q.Page = page
	}

	if values.Has("topic") {
		topic := values.Get("topic")
		q.Topic = &topic
	}

	return q, nil
}

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
