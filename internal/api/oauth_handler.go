package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/kingrain94/business-feed-api/internal/config"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

const (
	oauthStateCookie    = "oauth_state"
	oauthVerifierCookie = "oauth_verifier"
	oauthCookieMaxAge   = 600
	oauthCallbackPath   = "/login/oauth2/code/"

	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

var (
	errStateMismatch = errors.New("oauth state mismatch")
	errMissingCode   = errors.New("missing authorization code")
)

// appleEndpoint is Sign in with Apple. Apple expects client credentials in
// the request body.
var appleEndpoint = oauth2.Endpoint{
	AuthURL:   "https://appleid.apple.com/auth/authorize",
	TokenURL:  "https://appleid.apple.com/auth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

//go:generate mockery --name OAuthService --output ../mocks
type OAuthService interface {
	CompleteOAuthLogin(ctx context.Context, provider string, profile service.OAuthProfile) (string, error)
}

// ProfileReader turns an exchanged token into the attributes the login
// bridge needs. The callback request is passed for providers that post
// extra fields alongside the code.
type ProfileReader func(ctx context.Context, c *gin.Context, token *oauth2.Token) (service.OAuthProfile, error)

type OAuthProvider struct {
	Config  *oauth2.Config
	Profile ProfileReader
	// PKCE adds an S256 code challenge to the authorization request.
	PKCE bool
	// FormPost asks the provider to deliver the callback as a cross-site POST.
	FormPost bool
}

type OAuthHandler struct {
	*BaseHandler
	service   OAuthService
	providers map[string]OAuthProvider
	deeplink  string
}

func NewOAuthHandler(service OAuthService, deeplink string, logger *logger.Logger) *OAuthHandler {
	return &OAuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		providers:   make(map[string]OAuthProvider),
		deeplink:    deeplink,
	}
}

// RegisterProvider enables the flow for name, the lowercase registration id
// used in both the start and callback paths.
func (h *OAuthHandler) RegisterProvider(name string, provider OAuthProvider) {
	h.providers[strings.ToLower(name)] = provider
}

// RegisterConfiguredProviders enables every provider with credentials in cfg.
func (h *OAuthHandler) RegisterConfiguredProviders(cfg config.OAuthConfig) {
	if cfg.GoogleEnabled() {
		h.RegisterProvider("google", OAuthProvider{
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     endpoints.Google,
				RedirectURL:  cfg.RedirectURL("google"),
				Scopes:       cfg.GoogleScopes,
			},
			Profile: UserInfoProfile(googleUserInfoURL),
			PKCE:    true,
		})
	}
	if cfg.AppleEnabled() {
		h.RegisterProvider("apple", OAuthProvider{
			Config: &oauth2.Config{
				ClientID:     cfg.AppleClientID,
				ClientSecret: cfg.AppleClientSecret,
				Endpoint:     appleEndpoint,
				RedirectURL:  cfg.RedirectURL("apple"),
				Scopes:       cfg.AppleScopes,
			},
			Profile:  IDTokenProfile,
			FormPost: true,
		})
	}
}

// StartAuthorization godoc
// @Summary Start an OAuth2 login
// @Tags oauth
// @Param provider path string true "google or apple"
// @Success 302
// @Failure 404 {object} dto.Error
// @Router /oauth2/authorization/{provider} [get]
func (h *OAuthHandler) StartAuthorization(c *gin.Context) {
	name := strings.ToLower(c.Param("provider"))
	provider, ok := h.providers[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown provider"})
		return
	}

	state := oauth2.GenerateVerifier()
	opts := []oauth2.AuthCodeOption{}
	if provider.PKCE {
		verifier := oauth2.GenerateVerifier()
		h.setFlowCookie(c, provider, oauthVerifierCookie, verifier, oauthCookieMaxAge)
		opts = append(opts, oauth2.S256ChallengeOption(verifier))
	}
	if provider.FormPost {
		opts = append(opts, oauth2.SetAuthURLParam("response_mode", "form_post"))
	}
	h.setFlowCookie(c, provider, oauthStateCookie, state, oauthCookieMaxAge)

	c.Redirect(http.StatusFound, provider.Config.AuthCodeURL(state, opts...))
}

// Callback godoc
// @Summary OAuth2 provider callback
// @Description Exchanges the code, signs the user in and redirects to the app deep link
// @Tags oauth
// @Param provider path string true "google or apple"
// @Success 302
// @Router /login/oauth2/code/{provider} [get]
// @Router /login/oauth2/code/{provider} [post]
func (h *OAuthHandler) Callback(c *gin.Context) {
	name := strings.ToLower(c.Param("provider"))
	provider, ok := h.providers[name]
	if !ok {
		h.redirectFailure(c, name, fmt.Errorf("unknown provider %q", name))
		return
	}

	token, err := h.completeLogin(c, name, provider)
	h.clearFlowCookies(c, provider)
	if err != nil {
		h.redirectFailure(c, name, err)
		return
	}

	query := url.Values{}
	query.Set("token", token)
	query.Set("provider", name)
	c.Redirect(http.StatusFound, h.deeplinkWith(query))
}

func (h *OAuthHandler) completeLogin(c *gin.Context, name string, provider OAuthProvider) (string, error) {
	if providerErr := c.Request.FormValue("error"); providerErr != "" {
		return "", fmt.Errorf("provider returned %s", providerErr)
	}
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Request.FormValue("state") {
		return "", errStateMismatch
	}
	code := c.Request.FormValue("code")
	if code == "" {
		return "", errMissingCode
	}

	var opts []oauth2.AuthCodeOption
	if provider.PKCE {
		verifier, err := c.Cookie(oauthVerifierCookie)
		if err != nil {
			return "", fmt.Errorf("missing pkce verifier: %w", err)
		}
		opts = append(opts, oauth2.VerifierOption(verifier))
	}

	ctx := c.Request.Context()
	token, err := provider.Config.Exchange(ctx, code, opts...)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	profile, err := provider.Profile(ctx, c, token)
	if err != nil {
		return "", fmt.Errorf("read profile: %w", err)
	}
	return h.service.CompleteOAuthLogin(ctx, name, profile)
}

func (h *OAuthHandler) redirectFailure(c *gin.Context, provider string, err error) {
	h.logger.Error("OAuth login failed", err, zap.String("provider", provider))
	query := url.Values{}
	query.Set("error", "auth_failed")
	c.Redirect(http.StatusFound, h.deeplinkWith(query))
}

func (h *OAuthHandler) deeplinkWith(query url.Values) string {
	separator := "?"
	if strings.Contains(h.deeplink, "?") {
		separator = "&"
	}
	return h.deeplink + separator + query.Encode()
}

// Form-posted callbacks arrive cross-site, so their cookies need SameSite=None.
func (h *OAuthHandler) setFlowCookie(c *gin.Context, provider OAuthProvider, name, value string, maxAge int) {
	secure := c.Request.TLS != nil
	if provider.FormPost {
		c.SetSameSite(http.SameSiteNoneMode)
		secure = true
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(name, value, maxAge, oauthCallbackPath, "", secure, true)
}

func (h *OAuthHandler) clearFlowCookies(c *gin.Context, provider OAuthProvider) {
	h.setFlowCookie(c, provider, oauthStateCookie, "", -1)
	if provider.PKCE {
		h.setFlowCookie(c, provider, oauthVerifierCookie, "", -1)
	}
}

// UserInfoProfile reads the profile from an OpenID Connect userinfo endpoint.
func UserInfoProfile(userInfoURL string) ProfileReader {
	return func(ctx context.Context, _ *gin.Context, token *oauth2.Token) (service.OAuthProfile, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
		if err != nil {
			return service.OAuthProfile{}, err
		}
		token.SetAuthHeader(req)

		resp, err := oauth2.NewClient(ctx, nil).Do(req)
		if err != nil {
			return service.OAuthProfile{}, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return service.OAuthProfile{}, fmt.Errorf("userinfo returned %d", resp.StatusCode)
		}

		var claims struct {
			Email   string `json:"email"`
			Name    string `json:"name"`
			Picture string `json:"picture"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
			return service.OAuthProfile{}, fmt.Errorf("decode userinfo: %w", err)
		}
		return service.OAuthProfile{Email: claims.Email, Name: claims.Name, Picture: claims.Picture}, nil
	}
}

// IDTokenProfile reads the profile from the id_token returned with the access
// token. The token came straight from the provider's token endpoint over TLS,
// so its signature is not checked again here. Apple sends the user's name only
// once, as a JSON "user" form field on the first callback.
func IDTokenProfile(_ context.Context, c *gin.Context, token *oauth2.Token) (service.OAuthProfile, error) {
	raw, _ := token.Extra("id_token").(string)
	if raw == "" {
		return service.OAuthProfile{}, errors.New("token response has no id_token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return service.OAuthProfile{}, fmt.Errorf("parse id_token: %w", err)
	}
	profile := service.OAuthProfile{}
	profile.Email, _ = claims["email"].(string)
	profile.Name, _ = claims["name"].(string)
	profile.Picture, _ = claims["picture"].(string)

	if c != nil && profile.Name == "" {
		var user struct {
			Name struct {
				FirstName string `json:"firstName"`
				LastName  string `json:"lastName"`
			} `json:"name"`
		}
		if err := json.Unmarshal([]byte(c.Request.FormValue("user")), &user); err == nil {
			profile.Name = strings.TrimSpace(user.Name.FirstName + " " + user.Name.LastName)
		}
	}
	return profile, nil
}
