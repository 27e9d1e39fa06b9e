package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"golang.org/x/oauth2"

	"maitri/internal/config"
	"maitri/internal/middleware"
	"maitri/internal/models"
	"maitri/internal/validation"
)

// AuthHandler handles the OIDC operator login.
type AuthHandler struct {
	provider     *oidc.Provider
	oauth2Config oauth2.Config
	verifier     *oidc.IDTokenVerifier
	cfg          *config.Config
}

// NewAuthHandler creates a new auth handler with OIDC configuration.
func NewAuthHandler(ctx context.Context, cfg *config.Config) (*AuthHandler, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		provider: provider,
		oauth2Config: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID}),
		cfg:      cfg,
	}, nil
}

// LoginPage renders the sign-in page.
func LoginPage(cfg *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.Render("login", MergeBranding(fiber.Map{
			"Title": "Sign in",
		}, cfg))
	}
}

// Login initiates the OIDC login flow.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	state, err := generateState()
	if err != nil {
		return err
	}

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	sess.Set("oauth_state", state)

	return c.Redirect().To(h.oauth2Config.AuthCodeURL(state))
}

// Callback handles the OIDC callback after authentication.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	savedState, _ := sess.Get("oauth_state").(string)
	if savedState == "" || savedState != c.Query("state") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}
	sess.Delete("oauth_state")

	oauth2Token, err := h.oauth2Config.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}

	idToken, err := h.verifier.Verify(c.Context(), rawIDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}

	claims := make(map[string]any)
	if err := idToken.Claims(&claims); err != nil {
		return err
	}

	// Some providers keep email and name out of the ID token.
	userInfo, err := h.provider.UserInfo(c.Context(), oauth2.StaticTokenSource(oauth2Token))
	if err == nil {
		var extra map[string]any
		if err := userInfo.Claims(&extra); err == nil {
			for k, v := range extra {
				claims[k] = v
			}
		}
	} else {
		log.Printf("Warning: Failed to fetch userinfo: %v", err)
	}

	operator := operatorFromClaims(claims)
	if !h.admits(operator) {
		log.Printf("Rejected sign-in from %q: not the configured operator", operator.Email)
		return fiber.NewError(fiber.StatusForbidden, "this dashboard is restricted to the mission operator")
	}

	middleware.SetOperator(sess, operator)

	redirectURL := "/"
	if saved, ok := sess.Get(middleware.SessionRedirectAfterLogin).(string); ok {
		redirectURL = validation.SafeRedirect(saved)
		sess.Delete(middleware.SessionRedirectAfterLogin)
	}

	return c.Redirect().To(redirectURL)
}

// Logout clears the operator session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Destroy()
	}
	return c.Redirect().To("/")
}

// admits reports whether op may use the dashboard.
func (h *AuthHandler) admits(op *models.Operator) bool {
	if op.Sub == "" {
		return false
	}
	if h.cfg.OperatorEmail == "" {
		return true
	}
	return strings.EqualFold(op.Email, h.cfg.OperatorEmail)
}

func operatorFromClaims(claims map[string]any) *models.Operator {
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return &models.Operator{Sub: sub, Email: email, Name: name}
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
