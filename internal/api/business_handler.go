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

//go:generate mockery --name BusinessService --output ../mocks
type BusinessService interface {
	Create(ctx context.Context, caller *domain.User, req dto.BusinessRequest, images service.BusinessImages) (*domain.Business, error)
	Update(ctx context.Context, caller *domain.User, id string, req dto.BusinessRequest, images service.BusinessImages) (*domain.Business, error)
	List(ctx context.Context, caller *domain.User) ([]domain.Business, error)
	Delete(ctx context.Context, caller *domain.User, id string) error
	Info(ctx context.Context, caller *domain.User, id string) (*domain.Business, error)
}

type BusinessHandler struct {
	*BaseHandler
	service BusinessService
}

func NewBusinessHandler(service BusinessService, logger *logger.Logger) *BusinessHandler {
	return &BusinessHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// CreateBusiness godoc
// @Summary Create a business
// @Tags business
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Display name"
// @Param adminID formData string false "Owning admin user ID"
// @Param description formData string false "Description"
// @Param website formData string false "Website"
// @Param email formData string false "Contact email"
// @Param brandColorRGB formData string false "Brand colour"
// @Param logoImage formData file false "Logo"
// @Param wallpaperImage formData file false "Wallpaper"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router /v1/business/ [post]
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	req, images, ok := h.bindBusinessForm(c)
	if !ok {
		return
	}

	business, err := h.service.Create(h.RequestCtx(c), caller, req, images)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromBusiness(business))
}

// UpdateBusiness godoc
// @Summary Update a business
// @Description SUPER_ADMIN may update any business and its deleted flag, ADMIN only their own
// @Tags business
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param name formData string false "Display name"
// @Param deleted formData string false "true or false, SUPER_ADMIN only"
// @Param logoImage formData file false "Logo"
// @Param wallpaperImage formData file false "Wallpaper"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/business/{id} [put]
func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	req, images, ok := h.bindBusinessForm(c)
	if !ok {
		return
	}

	business, err := h.service.Update(h.RequestCtx(c), caller, c.Param("id"), req, images)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBusiness(business))
}

// ListBusinesses godoc
// @Summary List businesses that are not deleted
// @Tags business
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BusinessResponse
// @Failure 403 {object} dto.Error
// @Router /v1/business/ [get]
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	businesses, err := h.service.List(h.RequestCtx(c), caller)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBusinesses(businesses))
}

// DeleteBusiness godoc
// @Summary Soft delete a business
// @Tags business
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 204
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/business/{id} [delete]
func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
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

// GetBusinessInfo godoc
// @Summary Public profile of the caller's business
// @Tags business
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {object} dto.BusinessInfoResponse
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/business/{id}/info [get]
func (h *BusinessHandler) GetBusinessInfo(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	business, err := h.service.Info(h.RequestCtx(c), caller, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BusinessInfoFrom(business))
}

func (h *BusinessHandler) bindBusinessForm(c *gin.Context) (dto.BusinessRequest, service.BusinessImages, bool) {
	var req dto.BusinessRequest
	var images service.BusinessImages
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return req, images, false
	}

	var err error
	if images.Logo, err = formFile(c, "logoImage"); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return req, images, false
	}
	if images.Wallpaper, err = formFile(c, "wallpaperImage"); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return req, images, false
	}
	return req, images, true
}
