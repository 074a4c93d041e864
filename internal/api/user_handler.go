package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

//go:generate mockery --name UserService --output ../mocks
type UserService interface {
	List(ctx context.Context, caller *domain.User) ([]domain.User, error)
	Update(ctx context.Context, caller *domain.User, targetID string, req dto.UpdateUserRequest, picture *dto.FileUpload) (*domain.User, error)
	Invite(ctx context.Context, caller *domain.User, email string) error
}

type UserHandler struct {
	*BaseHandler
	service UserService
}

func NewUserHandler(service UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// ListUsers godoc
// @Summary List users
// @Description SUPER_ADMIN sees every user, ADMIN the members of their business
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.Error
// @Router /v1/users/ [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	users, err := h.service.List(h.RequestCtx(c), caller)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUsers(users))
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param firstName formData string false "First name"
// @Param lastName formData string false "Last name"
// @Param notifications formData string false "Notification preference"
// @Param phoneNumber formData string false "Phone number"
// @Param password formData string false "New password"
// @Param currentPassword formData string false "Current password, required when changing your own"
// @Param businessID formData string false "Business binding"
// @Param role formData string false "DEFAULT or ADMIN"
// @Param profileStatus formData string false "Profile status, SUPER_ADMIN only"
// @Param profilePicture formData file false "Profile picture"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /v1/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	picture, err := formFile(c, "profilePicture")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	user, err := h.service.Update(h.RequestCtx(c), caller, c.Param("id"), req, picture)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// InviteUser godoc
// @Summary Invite a registered user into the caller's business
// @Tags users
// @Produce plain
// @Security BearerAuth
// @Param email query string true "Email of the user to invite"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 403 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /v1/users/invite [get]
func (h *UserHandler) InviteUser(c *gin.Context) {
	caller, ok := h.Principal(c)
	if !ok {
		return
	}

	email := c.Query("email")
	if email == "" {
		c.String(http.StatusBadRequest, "email is required")
		return
	}

	if err := h.service.Invite(h.RequestCtx(c), caller, email); err != nil {
		h.writeTextError(c, err)
		return
	}
	c.String(http.StatusOK, "User invited successfully.")
}
