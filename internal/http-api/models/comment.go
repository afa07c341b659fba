package models

import "time"

type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement" yaml:"-"`
	Body      string    `json:"body" gorm:"not null" yaml:"body"`
	ArticleID int64     `json:"article_id" gorm:"column:article_id;not null;index" yaml:"article_id"`
	Author    string    `json:"author" gorm:"not null" yaml:"author"`
	Votes     int       `json:"votes" gorm:"default:0" yaml:"votes"`
	CreatedAt time.Time `json:"created_at" gorm:"default:now()" yaml:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
