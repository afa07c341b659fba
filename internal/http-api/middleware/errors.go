package middleware

import (
	"errors"
	"net/http"

	"ncnews/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	MsgBadRequest   = "Bad Request"
	MsgNotFound     = "Not Found"
	MsgPathNotFound = "Path not found"
	MsgInternal     = "Internal Server Error"
)

// Postgres SQLSTATE codes that indicate malformed client input.
var badInputCodes = map[string]bool{
	"22P02": true, // invalid_text_representation
	"22003": true, // numeric_value_out_of_range
	"23502": true, // not_null_violation
	"23503": true, // foreign_key_violation
	"23505": true, // unique_violation
}

// Normalize maps a failure to a status code and client message.
func Normalize(err error) (int, string) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr.Kind.Status(), appErr.Msg
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && badInputCodes[pgErr.Code] {
		return http.StatusBadRequest, MsgBadRequest
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, MsgNotFound
	}

	return http.StatusInternalServerError, MsgInternal
}

// ErrorHandler renders the last error attached with c.Error as {msg}.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, msg := Normalize(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("request_id", RequestIDFrom(c)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		} else {
			fields := []zap.Field{
				zap.String("request_id", RequestIDFrom(c)),
				zap.Int("status", status),
				zap.Error(err),
			}
			if kind, ok := apperr.KindOf(err); ok {
				fields = append(fields, zap.Stringer("kind", kind))
			}
			logger.Debug("request rejected", fields...)
		}
		c.AbortWithStatusJSON(status, gin.H{"msg": msg})
	}
}

// NoRoute answers every unmatched method and path.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": MsgPathNotFound})
}

// Recovery turns a panic into a 500 {msg} response.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.String("request_id", RequestIDFrom(c)),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": MsgInternal})
	})
}
