package session

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"realty_backend/internal/feature/auth/usecase"
)

// ContextUserID is the gin context key holding the authenticated user's ID.
const ContextUserID = "userID"

// CookieName is the cookie carrying the opaque admin session ID.
const CookieName = "admin_session"

// cookieMaxAge mirrors the server-side session TTL (24h).
const cookieMaxAge = 24 * 60 * 60

// SetCookie attaches the session cookie to the response.
func SetCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, sessionID, cookieMaxAge, "/", "", false, true)
}

// ClearCookie expires the session cookie.
func ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// AuthRequired returns a Gin middleware that restricts access to requests
// carrying a valid admin session. Unauthenticated requests are redirected to
// the sign-in page rather than failing silently.
func AuthRequired(sessions usecase.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(CookieName)
		if err != nil || sessionID == "" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		s, err := sessions.FindByID(c.Request.Context(), sessionID)
		if err != nil {
			if err != usecase.ErrSessionNotFound {
				slog.Error("session lookup failed", "error", err)
			}
			ClearCookie(c)
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		if !s.IsValid() {
			ClearCookie(c)
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, s.UserID)
		c.Next()
	}
}
