package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"realty_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockSessionRepository is a mock implementation of the SessionRepository interface.
type mockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *entity.Session) error
	FindByIDFunc func(ctx context.Context, id string) (*entity.Session, error)
	RevokeFunc   func(ctx context.Context, id string) error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrSessionNotFound
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, id)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func testUser(t *testing.T, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return &entity.User{
		ID:           1,
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: string(hash),
		Active:       active,
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login creates a session", func(t *testing.T) {
		user := testUser(t, "changeme123", true)
		var created *entity.Session
		mockUsers := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email != "admin@example.com" {
					t.Errorf("expected normalized email, got %q", email)
				}
				return user, nil
			},
		}
		mockSessions := &mockSessionRepository{
			CreateFunc: func(ctx context.Context, session *entity.Session) error {
				created = session
				return nil
			},
		}

		uc := NewAuthUsecase(mockUsers, mockSessions)
		sessionID, err := uc.Login(ctx, "  Admin@Example.COM ", "changeme123", SessionMeta{UserAgent: "ua", IPAddress: "127.0.0.1"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sessionID == "" {
			t.Fatal("session ID is empty")
		}
		if created == nil {
			t.Fatal("session was not created")
		}
		if created.ID != sessionID {
			t.Errorf("returned ID %q does not match created session %q", sessionID, created.ID)
		}
		if created.UserID != user.ID {
			t.Errorf("expected user ID %d, got %d", user.ID, created.UserID)
		}
		if !created.ExpiresAt.After(time.Now()) {
			t.Error("session expires in the past")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockSessionRepository{})

		_, err := uc.Login(ctx, "nobody@example.com", "changeme123", SessionMeta{})

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		user := testUser(t, "changeme123", true)
		mockUsers := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return user, nil
			},
		}

		uc := NewAuthUsecase(mockUsers, &mockSessionRepository{})
		_, err := uc.Login(ctx, "admin@example.com", "wrong-password", SessionMeta{})

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("deactivated account fails with the same error", func(t *testing.T) {
		user := testUser(t, "changeme123", false)
		sessionCreated := false
		mockUsers := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return user, nil
			},
		}
		mockSessions := &mockSessionRepository{
			CreateFunc: func(ctx context.Context, session *entity.Session) error {
				sessionCreated = true
				return nil
			},
		}

		uc := NewAuthUsecase(mockUsers, mockSessions)
		_, err := uc.Login(ctx, "admin@example.com", "changeme123", SessionMeta{})

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
		if sessionCreated {
			t.Error("no session may be created for a deactivated account")
		}
	})

	t.Run("session creation failure", func(t *testing.T) {
		user := testUser(t, "changeme123", true)
		mockUsers := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return user, nil
			},
		}
		mockSessions := &mockSessionRepository{
			CreateFunc: func(ctx context.Context, session *entity.Session) error {
				return errors.New("redis down")
			},
		}

		uc := NewAuthUsecase(mockUsers, mockSessions)
		_, err := uc.Login(ctx, "admin@example.com", "changeme123", SessionMeta{})

		if err == nil {
			t.Fatal("expected error but got nil")
		}
		if errors.Is(err, ErrInvalidCredentials) {
			t.Error("a storage failure must not masquerade as bad credentials")
		}
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the session", func(t *testing.T) {
		revoked := ""
		mockSessions := &mockSessionRepository{
			RevokeFunc: func(ctx context.Context, id string) error {
				revoked = id
				return nil
			},
		}

		uc := NewAuthUsecase(&mockUserRepository{}, mockSessions)
		if err := uc.Logout(ctx, "session-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revoked != "session-001" {
			t.Errorf("expected session-001 to be revoked, got %q", revoked)
		}
	})

	t.Run("missing session is not an error", func(t *testing.T) {
		mockSessions := &mockSessionRepository{
			RevokeFunc: func(ctx context.Context, id string) error {
				return ErrSessionNotFound
			},
		}

		uc := NewAuthUsecase(&mockUserRepository{}, mockSessions)
		if err := uc.Logout(ctx, "gone"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
