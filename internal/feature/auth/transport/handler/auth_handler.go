// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"realty_backend/internal/feature/auth/usecase"
	"realty_backend/internal/platform/session"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Login verifies credentials and returns a new session ID on success.
	Login(ctx context.Context, email, password string, meta usecase.SessionMeta) (string, error)
	// Logout revokes the session with the given ID.
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler handles the admin sign-in and sign-out pages.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginPage renders the admin sign-in form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

// Login handles the sign-in form submission.
// Every failure renders the same generic message; on success it sets the
// session cookie and redirects to the dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	meta := usecase.SessionMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
	sessionID, err := h.auth.Login(c.Request.Context(), email, password, meta)
	if err != nil {
		slog.Warn("admin login failed", "remote_addr", c.ClientIP())
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"Error": "Invalid credentials.",
			"Email": email,
		})
		return
	}

	session.SetCookie(c, sessionID)
	slog.Info("admin login successful", "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/admin")
}

// Logout revokes the current session, clears the cookie, and redirects to the
// sign-in page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(session.CookieName); err == nil {
		if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
			slog.Error("failed to revoke session", "error", err)
		}
	}
	session.ClearCookie(c)
	c.Redirect(http.StatusFound, "/admin/login")
}
