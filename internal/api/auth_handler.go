package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/middleware"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

const (
	msgRegistered       = "User registered successfully. Please check your email for verification link."
	msgLoggedIn         = "User logged in successfully"
	msgResetEmailSent   = "Password reset email sent."
	msgVerificationSent = "Verification email sent successfully."
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*service.AuthResult, error)
	Login(ctx context.Context, req dto.LoginRequest) (*service.AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, form dto.ResetPasswordForm) error
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	Me(ctx context.Context, token string) (*service.AuthResult, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// Register godoc
// @Summary Register a new user
// @Description Create an email/password account in PENDING role and send a verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	result, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: msgRegistered,
		User:    dto.FromUser(result.User),
		Token:   result.Token,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	result, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: msgLoggedIn,
		User:    dto.FromUser(result.User),
		Token:   result.Token,
	})
}

// RequestPasswordReset godoc
// @Summary Email a password reset link
// @Tags auth
// @Accept json
// @Produce plain
// @Param body body dto.EmailRequest true "Account email"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /v1/auth/password-reset/request [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.RequestPasswordReset(h.RequestCtx(c), req.Email); err != nil {
		h.writeTextError(c, err)
		return
	}
	c.String(http.StatusOK, msgResetEmailSent)
}

// ShowResetForm godoc
// @Summary Render the password reset form
// @Tags auth
// @Produce html
// @Param token query string true "Reset token"
// @Success 200 {string} string
// @Router /v1/auth/password-reset [get]
func (h *AuthHandler) ShowResetForm(c *gin.Context) {
	h.renderHTML(c, http.StatusOK, "reset_form.html", resetFormPage{Token: c.Query("token")})
}

// ResetPassword godoc
// @Summary Submit a new password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param token formData string true "Reset token"
// @Param password formData string true "New password"
// @Param confirmPassword formData string true "New password again"
// @Success 200 {string} string
// @Router /v1/auth/password-reset [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var form dto.ResetPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderHTML(c, http.StatusOK, "reset_result.html", resultPage{Message: service.MsgResetProcessingFailed})
		return
	}

	err := h.service.ResetPassword(h.RequestCtx(c), form)
	h.renderHTML(c, http.StatusOK, "reset_result.html", h.resultFor(err, service.MsgPasswordReset, service.MsgResetProcessingFailed))
}

// VerifyEmail godoc
// @Summary Confirm an email address
// @Tags auth
// @Produce html
// @Param token query string true "Verification token"
// @Success 200 {string} string
// @Router /v1/auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	err := h.service.VerifyEmail(h.RequestCtx(c), c.Query("token"))
	h.renderHTML(c, http.StatusOK, "verification_result.html", h.resultFor(err, service.MsgEmailVerified, service.MsgResetProcessingFailed))
}

// ResendVerification godoc
// @Summary Send a fresh verification email
// @Tags auth
// @Accept json
// @Produce plain
// @Param body body dto.EmailRequest true "Account email"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /v1/auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.ResendVerification(h.RequestCtx(c), req.Email); err != nil {
		h.writeTextError(c, err)
		return
	}
	c.String(http.StatusOK, msgVerificationSent)
}

// Me godoc
// @Summary Current user
// @Description Re-resolve the bearer token's user and echo the token back
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.Error
// @Router /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	token, ok := middleware.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Authorization header is required"})
		return
	}

	result, err := h.service.Me(h.RequestCtx(c), token)
	if err != nil {
		// Any failure to resolve the token owner is an authentication failure here.
		if errors.Is(err, service.ErrNotFound) {
			err = service.ErrUnknownPrincipal
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: msgLoggedIn,
		User:    dto.FromUser(result.User),
		Token:   result.Token,
	})
}

// resultFor turns a page flow outcome into the page model. Validation
// messages are shown as is, anything else is logged behind fallback.
func (h *AuthHandler) resultFor(err error, success, fallback string) resultPage {
	if err == nil {
		return resultPage{Success: true, Message: success}
	}
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return resultPage{Message: validation.Message}
	}
	h.logger.Error("Auth page flow failed", err)
	return resultPage{Message: fallback}
}
