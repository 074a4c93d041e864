package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

//go:generate mockery --name PostService --output ../mocks
type PostService interface {
	Create(ctx context.Context, caller *domain.User, req dto.CreatePostRequest, image *dto.FileUpload) (*domain.Post, error)
	List(ctx context.Context, caller *domain.User, page domain.PageRequest) ([]service.PostView, error)
	Update(ctx context.Context, caller *domain.User, postID string, req dto.UpdatePostRequest) (*domain.Post, error)
	Delete(ctx context.Context, caller *domain.User, postID string) error
	ToggleLike(ctx context.Context, caller *domain.User, postID string) (bool, error)
}

type PostHandler struct {
	*BaseHandler
	service PostService
}

func NewPostHandler(service PostService, logger *logger.Logger) *PostHandler {
	return &PostHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// CreatePost godoc
// @Summary Create a post with an image
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param location formData string false "Location"
// @Param file formData file true "Post image"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router /v1/posts/ [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	image, err := formFile(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	post, err := h.service.Create(h.RequestCtx(c), caller, req, image)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromPost(post, false))
}

// ListPosts godoc
// @Summary List the posts of the caller's business, newest first
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page"
// @Param size query int false "Page size, default 20, max 100"
// @Success 200 {array} dto.PostResponse
// @Failure 403 {object} dto.Error
// @Router /v1/posts/ [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	views, err := h.service.List(h.RequestCtx(c), caller, service.PageRequest(query.Page, query.Size))
	if err != nil {
		h.writeError(c, err)
		return
	}

	posts := make([]dto.PostResponse, len(views))
	for i := range views {
		posts[i] = *dto.FromPost(&views[i].Post, views[i].IsLiked)
	}
	c.JSON(http.StatusOK, posts)
}

// UpdatePost godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param body body dto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	post, err := h.service.Update(h.RequestCtx(c), caller, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPost(post, false))
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), caller, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	liked, err := h.service.ToggleLike(h.RequestCtx(c), caller, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LikeResponse{Liked: liked})
}
