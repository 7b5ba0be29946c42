package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"sync"

	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleIssuer    = "https://accounts.google.com"
	stateCookieName = "oauth_state"
)

var errNotAdmin = errors.New("this Google account is not an admin")

type GoogleConfig struct {
	ClientID         string
	ClientSecret     string
	RedirectURL      string
	FrontendRedirect string
	SecureCookie     bool
}

// Google signs in existing admins with their Google account. No new
// accounts are ever created here.
type Google struct {
	*Handler
	cfg   GoogleConfig
	oauth *oauth2.Config

	mu       sync.Mutex
	verifier *oidc.IDTokenVerifier
}

func NewGoogle(h *Handler, cfg GoogleConfig) *Google {
	return &Google{
		Handler: h,
		cfg:     cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /auth/google
func (g *Google) Start(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 300, "/", "", g.cfg.SecureCookie, true)
	c.Redirect(http.StatusFound, g.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// GET /auth/google/callback
func (g *Google) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie(stateCookieName)
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", g.cfg.SecureCookie, true)

	ctx := c.Request.Context()
	tok, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := g.verify(ctx, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := g.resolveAdmin(ctx, claims)
	if err != nil {
		if errors.Is(err, errNotAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load account", "details": err.Error()})
		return
	}

	signed, _, ok := g.issue(c, user)
	if !ok {
		return
	}

	if g.cfg.FrontendRedirect == "" {
		c.JSON(http.StatusOK, gin.H{"token": signed, "redirect": DefaultRedirect})
		return
	}
	c.Redirect(http.StatusFound, g.cfg.FrontendRedirect+"?token="+url.QueryEscape(signed))
}

type googleIDClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

func (g *Google) idVerifier(ctx context.Context) (*oidc.IDTokenVerifier, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.verifier != nil {
		return g.verifier, nil
	}
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, errors.New("failed to init google oidc provider")
	}
	g.verifier = provider.Verifier(&oidc.Config{ClientID: g.cfg.ClientID})
	return g.verifier, nil
}

func (g *Google) verify(ctx context.Context, rawIDToken string) (*googleIDClaims, error) {
	verifier, err := g.idVerifier(ctx)
	if err != nil {
		return nil, err
	}

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims googleIDClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}
	if claims.Email == "" || claims.Sub == "" {
		return nil, errors.New("token missing required claims")
	}
	if !claims.EmailVerified {
		return nil, errors.New("google email is not verified")
	}
	return &claims, nil
}

// resolveAdmin finds the admin by Google subject, then by email, linking
// the subject on first use.
func (g *Google) resolveAdmin(ctx context.Context, gc *googleIDClaims) (users.User, error) {
	user, err := g.users.FindByGoogleSub(ctx, gc.Sub)
	if err == nil {
		if !user.IsAdmin() {
			return users.User{}, errNotAdmin
		}
		return user, nil
	}
	if !apperror.IsNotFound(err) {
		return users.User{}, err
	}

	user, err = g.users.FindByEmail(ctx, gc.Email)
	if apperror.IsNotFound(err) {
		return users.User{}, errNotAdmin
	}
	if err != nil {
		return users.User{}, err
	}
	if !user.IsAdmin() {
		return users.User{}, errNotAdmin
	}

	if user.GoogleSub == nil {
		if err := g.users.LinkGoogle(ctx, user.ID, gc.Sub); err != nil {
			return users.User{}, err
		}
		sub := gc.Sub
		user.GoogleSub = &sub
		logger.Log.WithField("user_id", user.ID).Info("linked google account")
	} else if *user.GoogleSub != gc.Sub {
		return users.User{}, errNotAdmin
	}
	return user, nil
}
