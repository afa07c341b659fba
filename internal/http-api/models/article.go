package models

import "time"

type Article struct {
	ArticleID int64     `json:"article_id" gorm:"column:article_id;primaryKey;autoIncrement" yaml:"-"`
	Title     string    `json:"title" gorm:"not null" yaml:"title"`
	Topic     string    `json:"topic" gorm:"not null" yaml:"topic"`
	Author    string    `json:"author" gorm:"not null" yaml:"author"`
	Body      string    `json:"body" gorm:"not null" yaml:"body"`
	CreatedAt time.Time `json:"created_at" gorm:"default:now()" yaml:"created_at"`
	Votes     int       `json:"votes" gorm:"default:0" yaml:"votes"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleWithCount is an article row annotated with its derived comment count.
type ArticleWithCount struct {
	Article
	CommentCount int `json:"comment_count"`
}

// ArticleListRow is one page entry of the article listing.
type ArticleListRow struct {
	Article
	CommentCount int `json:"comment_count"`
	TotalCount   int `json:"total_count"`
}
