package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/pkg/logger"
)

func newValidationRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	ok := func(c *gin.Context) { c.String(http.StatusOK, c.Query("q")) }
	router.GET("/v1/files/:name", ok)
	router.POST("/v1/posts/", ok)
	return router
}

func TestValidateContentType(t *testing.T) {
	m := NewValidationMiddleware(&logger.Logger{Logger: zap.NewNop()})
	router := newValidationRouter(m.ValidateContentType(DefaultContentTypes...))

	tests := []struct {
		name        string
		contentType string
		body        string
		want        int
	}{
		{name: "json", contentType: "application/json", body: "{}", want: http.StatusOK},
		{name: "multipart with boundary", contentType: "multipart/form-data; boundary=----abc", body: "x", want: http.StatusOK},
		{name: "empty body needs no type", want: http.StatusOK},
		{name: "body without type", body: "x", want: http.StatusBadRequest},
		{name: "xml", contentType: "application/xml", body: "<a/>", want: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/posts/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestValidateRequestSize(t *testing.T) {
	m := NewValidationMiddleware(&logger.Logger{Logger: zap.NewNop()})
	router := newValidationRouter(m.ValidateRequestSize(4))

	req := httptest.NewRequest(http.MethodPost, "/v1/posts/", strings.NewReader("too large"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestBlockSuspiciousPatterns(t *testing.T) {
	m := NewValidationMiddleware(&logger.Logger{Logger: zap.NewNop()})
	router := newValidationRouter(m.BlockSuspiciousPatterns())

	tests := []struct {
		name string
		url  string
		want int
	}{
		{name: "plain file", url: "/v1/files/abc.png", want: http.StatusOK},
		{name: "encoded traversal", url: "/v1/files/%2e%2e%2fetc", want: http.StatusBadRequest},
		{name: "script in query", url: "/v1/files/a.png?q=%3Cscript%3E", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	m := NewValidationMiddleware(&logger.Logger{Logger: zap.NewNop()})
	router := newValidationRouter(m.SanitizeInput())

	req := httptest.NewRequest(http.MethodGet, "/v1/files/a.png?q=ab%01c", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", w.Body.String())
}
