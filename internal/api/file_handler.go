package api

import (
	"context"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

//go:generate mockery --name FileService --output ../mocks
type FileService interface {
	UploadImage(ctx context.Context, caller *domain.User, upload dto.FileUpload) (*domain.FileMetadata, error)
	Get(ctx context.Context, caller *domain.User, storedFilename string) (*service.FileContent, error)
	GetPublic(ctx context.Context, storedFilename string) (*service.FileContent, error)
	Metadata(ctx context.Context, caller *domain.User, storedFilename string) (*domain.FileMetadata, error)
	PublicMetadata(ctx context.Context, storedFilename string) (*domain.FileMetadata, error)
	List(ctx context.Context, caller *domain.User) ([]domain.FileMetadata, error)
	Delete(ctx context.Context, caller *domain.User, storedFilename string) error
}

type FileHandler struct {
	*BaseHandler
	service FileService
}

func NewFileHandler(service FileService, logger *logger.Logger) *FileHandler {
	return &FileHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// UploadImage godoc
// @Summary Upload an image into the caller's business
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "JPEG, PNG or WebP image"
// @Success 200 {object} dto.FileMetadataResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /v1/files/upload/image [post]
func (h *FileHandler) UploadImage(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	upload, err := formFile(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	if upload == nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "file is required"})
		return
	}

	metadata, err := h.service.UploadImage(h.RequestCtx(c), caller, *upload)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromFileMetadata(metadata))
}

// ListFiles godoc
// @Summary List the active files of the caller's business
// @Tags files
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FileMetadataResponse
// @Router /v1/files/ [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	files, err := h.service.List(h.RequestCtx(c), caller)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromFileMetadataList(files))
}

// GetFile godoc
// @Summary Download a file of the caller's business
// @Tags files
// @Produce octet-stream
// @Security BearerAuth
// @Param name path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/files/{name} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	content, err := h.service.Get(h.RequestCtx(c), caller, c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.serve(c, content, "private, no-cache, no-store, must-revalidate")
}

// GetFileMetadata godoc
// @Summary Metadata of a file of the caller's business
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param name path string true "Stored filename"
// @Success 200 {object} dto.FileMetadataResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/files/{name}/metadata [get]
func (h *FileHandler) GetFileMetadata(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	metadata, err := h.service.Metadata(h.RequestCtx(c), caller, c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromFileMetadata(metadata))
}

// DeleteFile godoc
// @Summary Soft delete a file
// @Tags files
// @Security BearerAuth
// @Param name path string true "Stored filename"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/files/{name} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), caller, c.Param("name")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPublicFile godoc
// @Summary Download a publicly accessible file
// @Tags files
// @Produce octet-stream
// @Param name path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/files/public/{name} [get]
func (h *FileHandler) GetPublicFile(c *gin.Context) {
	content, err := h.service.GetPublic(h.RequestCtx(c), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.serve(c, content, "public, max-age=86400")
}

// GetPublicFileMetadata godoc
// @Summary Metadata of a publicly accessible file
// @Tags files
// @Produce json
// @Param name path string true "Stored filename"
// @Success 200 {object} dto.FileMetadataResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/files/public/{name}/metadata [get]
func (h *FileHandler) GetPublicFileMetadata(c *gin.Context) {
	metadata, err := h.service.PublicMetadata(h.RequestCtx(c), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromFileMetadata(metadata))
}

func (h *FileHandler) serve(c *gin.Context, content *service.FileContent, cacheControl string) {
	defer content.Body.Close()

	disposition := mime.FormatMediaType("inline", map[string]string{"filename": content.Metadata.OriginalFilename})
	if disposition == "" {
		disposition = "inline"
	}
	extraHeaders := map[string]string{
		"Cache-Control":       cacheControl,
		"Content-Disposition": disposition,
	}
	c.DataFromReader(http.StatusOK, content.Size, content.Metadata.MimeType, content.Body, extraHeaders)
}
