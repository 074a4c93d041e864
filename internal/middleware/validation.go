package middleware

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// Content types accepted by the API: JSON bodies, multipart uploads and the
// url-encoded password reset form.
var DefaultContentTypes = []string{
	"application/json",
	"multipart/form-data",
	"application/x-www-form-urlencoded",
}

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// SanitizeInput strips control characters from query parameters
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false
		for key, values := range query {
			for i, value := range values {
				sanitized := sanitizeString(value)
				if sanitized != value {
					m.logger.Info("Sanitized query parameter", zap.String("key", key))
					query[key][i] = sanitized
					changed = true
				}
			}
		}
		if changed {
			c.Request.URL.RawQuery = query.Encode()
		}

		c.Next()
	}
}

// ValidateContentType ensures only allowed content types. Requests without
// a body need no Content-Type.
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if contentType == "" {
			if c.Request.ContentLength <= 0 {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required"})
			return
		}

		// Remove charset and boundary parameters
		contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])

		for _, allowedType := range allowedTypes {
			if strings.EqualFold(contentType, allowedType) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
			"error":         "Unsupported Content-Type",
			"allowed_types": allowedTypes,
		})
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":         "Request body too large",
				"max_size":      maxSize,
				"received_size": c.Request.ContentLength,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns rejects paths and query values carrying path
// traversal or script injection. Headers are not inspected since multipart
// boundaries routinely contain dashes.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	patterns := []string{
		// Path traversal
		`\.\.\/`,
		`\.\.\\`,
		`(?i)%2e%2e%2f`,
		`(?i)%2e%2e%5c`,
		// XSS
		`(?i)<script.*?>`,
		`(?i)javascript:`,
		`(?i)<iframe.*?>`,
	}

	compiled := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		compiled[i] = regexp.MustCompile(pattern)
	}

	return func(c *gin.Context) {
		if containsSuspiciousPattern(c.Request.URL.Path, compiled) ||
			containsSuspiciousPattern(c.Request.URL.RawPath, compiled) {
			m.logger.Warn("Blocked suspicious request",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if key, ok := suspiciousQueryKey(c.Request.URL.Query(), compiled); ok {
			m.logger.Warn("Blocked suspicious query parameter",
				zap.String("key", key),
				zap.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		c.Next()
	}
}

func sanitizeString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		// Keep newline, carriage return and tab
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func suspiciousQueryKey(query url.Values, patterns []*regexp.Regexp) (string, bool) {
	for key, values := range query {
		for _, value := range values {
			if containsSuspiciousPattern(value, patterns) {
				return key, true
			}
		}
	}
	return "", false
}

func containsSuspiciousPattern(input string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}
