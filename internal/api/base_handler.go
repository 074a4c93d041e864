package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/internal/utils"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

const internalErrorMessage = "Internal server error"

type BaseHandler struct {
	logger *logger.Logger
}

func NewBaseHandler(logger *logger.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// Principal returns the authenticated caller, answering 401 when the
// pipeline did not resolve one.
func (h *BaseHandler) Principal(c *gin.Context) (*domain.User, bool) {
	user, err := utils.GetPrincipalFromContext(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
		return nil, false
	}
	return user, true
}

// classify maps a service error onto its HTTP status and client message.
func (h *BaseHandler) classify(err error) (int, string) {
	var validation *service.ValidationError
	var upstream *service.UpstreamError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Message
	case errors.Is(err, service.ErrMalformedToken),
		errors.Is(err, service.ErrExpiredToken),
		errors.Is(err, service.ErrUnknownPrincipal),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrProfileInactive),
		errors.Is(err, service.ErrTenantDeleted),
		errors.Is(err, service.ErrInsufficientRole),
		errors.Is(err, service.ErrCrossTenantAccess),
		errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrNotPublic),
		errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.As(err, &upstream):
		h.logger.Error(upstream.Message, upstream.Err)
		return http.StatusInternalServerError, upstream.Message
	default:
		h.logger.Error("Unhandled request error", err)
		return http.StatusInternalServerError, internalErrorMessage
	}
}

func (h *BaseHandler) writeError(c *gin.Context, err error) {
	status, message := h.classify(err)
	c.JSON(status, dto.Error{Error: message})
}

// writeTextError is writeError for endpoints that answer in plain text.
func (h *BaseHandler) writeTextError(c *gin.Context, err error) {
	status, message := h.classify(err)
	c.String(status, message)
}

// formFile reads a whole multipart file part. A missing part, or a body
// that is not multipart at all, returns nil.
func formFile(c *gin.Context, field string) (*dto.FileUpload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	return readUpload(header)
}

func readUpload(header *multipart.FileHeader) (*dto.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", header.Filename, err)
	}
	return &dto.FileUpload{Filename: header.Filename, Data: data}, nil
}
