package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"realty_backend/internal/feature/auth/domain/entity"
	"realty_backend/internal/feature/auth/usecase"
)

// mockSessionRepository is a mock implementation of the SessionRepository interface.
type mockSessionRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*entity.Session, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return nil
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, usecase.ErrSessionNotFound
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id string) error {
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func validSession(id string) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    7,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func serveProtected(repo usecase.SessionRepository, cookie string) (*httptest.ResponseRecorder, *uint) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var seenUserID *uint
	r.GET("/admin", AuthRequired(repo), func(c *gin.Context) {
		if v, ok := c.Get(ContextUserID); ok {
			id := v.(uint)
			seenUserID = &id
		}
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seenUserID
}

func TestAuthRequired(t *testing.T) {
	t.Run("no cookie redirects to login", func(t *testing.T) {
		w, seen := serveProtected(&mockSessionRepository{}, "")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"))
		assert.Nil(t, seen)
	})

	t.Run("unknown session redirects and clears the cookie", func(t *testing.T) {
		w, seen := serveProtected(&mockSessionRepository{}, "gone")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"))
		assert.Nil(t, seen)

		var cleared bool
		for _, ck := range w.Result().Cookies() {
			if ck.Name == CookieName && ck.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared, "stale cookie was not cleared")
	})

	t.Run("expired session redirects", func(t *testing.T) {
		repo := &mockSessionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				s := validSession(id)
				s.ExpiresAt = time.Now().Add(-time.Minute)
				return s, nil
			},
		}

		w, seen := serveProtected(repo, "stale")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"))
		assert.Nil(t, seen)
	})

	t.Run("revoked session redirects", func(t *testing.T) {
		repo := &mockSessionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				s := validSession(id)
				now := time.Now()
				s.RevokedAt = &now
				return s, nil
			},
		}

		w, seen := serveProtected(repo, "revoked")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Nil(t, seen)
	})

	t.Run("valid session passes through with the user ID", func(t *testing.T) {
		repo := &mockSessionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				return validSession(id), nil
			},
		}

		w, seen := serveProtected(repo, "session-001")

		assert.Equal(t, http.StatusOK, w.Code)
		if assert.NotNil(t, seen) {
			assert.Equal(t, uint(7), *seen)
		}
	})
}
