package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type resetFormPage struct {
	Token string
}

// resultPage backs both the reset and the verification result pages.
type resultPage struct {
	Success bool
	Message string
}

func (h *BaseHandler) renderHTML(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Failed to render template", err)
		c.String(http.StatusInternalServerError, internalErrorMessage)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
