package service

import (
	"errors"

	"ncnews/internal/apperr"

	"gorm.io/gorm"
)

const (
	msgArticleNotFound = "NOT Found, article_id doesnot exist"
	msgCommentNotFound = "NOT Found, comment_id doesnot exist"
	msgUserNotFound    = "NOT Found, username doesnot exist"
	msgInvalidUsername = "Invalid username"
)

var (
	ErrArticleNotFound = apperr.NotFound(msgArticleNotFound)
	ErrCommentNotFound = apperr.NotFound(msgCommentNotFound)
	ErrUserNotFound    = apperr.NotFound(msgUserNotFound)
	ErrInvalidUsername = apperr.BadInput(msgInvalidUsername)
)

// notFoundAs rewrites a missing-row error into the given not-found message and keeps other errors.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.KindNotFound, msg, err)
	}
	return err
}
