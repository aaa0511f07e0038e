package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"realty_backend/internal/feature/auth/domain/entity"
)

// sessionTTL is how long an admin session stays valid without re-login.
const sessionTTL = 24 * time.Hour

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// FindByEmail retrieves the user matching the given email.
	// The lookup is case-insensitive. Returns ErrUserNotFound on a miss.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	// Returns ErrUserNotFound on a miss.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// SessionMeta carries request metadata recorded on the session for auditing.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

// AuthUsecase implements admin credential verification and session lifecycle.
type AuthUsecase struct {
	users    UserRepository
	sessions SessionRepository
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository) *AuthUsecase {
	return &AuthUsecase{users: users, sessions: sessions}
}

// Login verifies the credentials and, on success, establishes a server-side
// session and returns its ID. Unknown email, wrong password, and deactivated
// account all fail with ErrInvalidCredentials so the caller cannot leak which
// case occurred. A bcrypt comparison runs even when the user does not exist,
// to keep response timing uniform.
func (u *AuthUsecase) Login(ctx context.Context, email, password string, meta SessionMeta) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword is always called.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil || !user.Active {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return session.ID, nil
}

// Logout revokes the session with the given ID.
// A missing session is not an error; logout is idempotent.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Revoke(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}
