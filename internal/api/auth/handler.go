package auth

import (
	"net/http"
	"strings"
	"time"

	"artist-portfolio/internal/app/http/middleware"
	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"
	"artist-portfolio/internal/pkg/token"
	"artist-portfolio/internal/repository"
	"artist-portfolio/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const DefaultRedirect = "/admin"

type Handler struct {
	users    repository.Users
	issuer   *token.Issuer
	sessions session.Store
	now      func() time.Time
}

func NewHandler(u repository.Users, issuer *token.Issuer, sessions session.Store) *Handler {
	return &Handler{users: u, issuer: issuer, sessions: sessions, now: time.Now}
}

type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserDTO(u users.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// SafeRedirect only allows same-site paths such as "/admin/upload".
func SafeRedirect(target string) string {
	target = strings.TrimSpace(target)
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return DefaultRedirect
	}
	return target
}

func (h *Handler) issue(c *gin.Context, user users.User) (string, *token.Claims, bool) {
	signed, claims, err := h.issuer.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return "", nil, false
	}
	if err := h.users.TouchLastLogin(c.Request.Context(), user.ID, h.now()); err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID).Warn("failed to record last login")
	}
	return signed, claims, true
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Redirect string `json:"redirect"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required", "details": err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperror.ErrInvalidCredentials.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in", "details": err.Error()})
		return
	}

	if user.Password == nil || *user.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This account uses Google sign-in"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperror.ErrInvalidCredentials.Message})
		return
	}
	if !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	signed, claims, ok := h.issue(c, user)
	if !ok {
		return
	}

	logger.Log.WithField("user_id", user.ID).Info("admin signed in")
	c.JSON(http.StatusOK, gin.H{
		"token":      signed,
		"expires_at": claims.ExpiresAt.Time,
		"redirect":   SafeRedirect(input.Redirect),
		"user":       toUserDTO(user),
	})
}

// POST /logout (auth)
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.sessions.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to sign out", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GET /session (auth)
func (h *Handler) Session(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	user, err := h.users.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":       toUserDTO(user),
		"expires_at": claims.ExpiresAt.Time,
	})
}
