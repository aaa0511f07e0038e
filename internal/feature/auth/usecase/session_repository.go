package usecase

import (
	"context"

	"realty_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for admin sessions.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters/platform).
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID.
	// Returns ErrSessionNotFound if no such session exists.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke marks a session as revoked.
	Revoke(ctx context.Context, id string) error

	// DeleteExpired removes expired sessions from storage.
	DeleteExpired(ctx context.Context) (int64, error)
}
