package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ncnews/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", apperr.NotFound("NOT Found, article_id doesnot exist"), http.StatusNotFound, "NOT Found, article_id doesnot exist"},
		{"bad input", apperr.BadInput("Invalid username"), http.StatusBadRequest, "Invalid username"},
		{"invalid query", apperr.InvalidQuery("Invalid query.. sorry!!!"), http.StatusNotFound, "Invalid query.. sorry!!!"},
		{"unknown field", apperr.UnknownField("Bad request"), http.StatusNotFound, "Bad request"},
		{"wrapped app error", fmt.Errorf("ctx: %w", apperr.BadInput("Bad Request")), http.StatusBadRequest, "Bad Request"},
		{"foreign key", fmt.Errorf("create article: %w", &pgconn.PgError{Code: "23503"}), http.StatusBadRequest, MsgBadRequest},
		{"invalid text", &pgconn.PgError{Code: "22P02"}, http.StatusBadRequest, MsgBadRequest},
		{"not null", &pgconn.PgError{Code: "23502"}, http.StatusBadRequest, MsgBadRequest},
		{"other pg error", &pgconn.PgError{Code: "53300"}, http.StatusInternalServerError, MsgInternal},
		{"record not found", fmt.Errorf("get: %w", gorm.ErrRecordNotFound), http.StatusNotFound, MsgNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, MsgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Normalize(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := zap.NewNop()
	r.Use(RequestID(), Recovery(logger), ErrorHandler(logger))
	r.NoRoute(NoRoute)
	return r
}

func decodeMsg(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["msg"]
}

func TestErrorHandler_RendersLastError(t *testing.T) {
	r := setupRouter()
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("first"))
		_ = c.Error(&pgconn.PgError{Code: "23503"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, MsgBadRequest, decodeMsg(t, w))
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	r := setupRouter()
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"topics": []string{}})
		_ = c.Error(errors.New("late"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"topics":[]}`, w.Body.String())
}

func TestNoRoute_AnyMethod(t *testing.T) {
	r := setupRouter()
	r.GET("/api/topics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, "/api/not-a-route", nil))
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, MsgPathNotFound, decodeMsg(t, w))
	}

	// a known path with an unregistered method is still 404
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/topics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecovery(t *testing.T) {
	r := setupRouter()
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MsgInternal, decodeMsg(t, w))
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}

func TestErrorHandler_LogsRejectionKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(ErrorHandler(zap.New(core)))
	r.GET("/articles", func(c *gin.Context) {
		_ = c.Error(apperr.InvalidQuery("Invalid sort_by query.. sorry!!!"))
	})
	r.GET("/fk", func(c *gin.Context) {
		_ = c.Error(&pgconn.PgError{Code: "23503"})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fk", nil))

	entries := logs.FilterMessage("request rejected").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "invalid_query", entries[0].ContextMap()["kind"])
	assert.NotContains(t, entries[1].ContextMap(), "kind")
}
