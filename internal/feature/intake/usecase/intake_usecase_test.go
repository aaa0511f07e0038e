package usecase

import (
	"context"
	"errors"
	"testing"

	"realty_backend/internal/feature/intake/domain/entity"
)

// mockIntakeRepository is a mock implementation of the IntakeRepository interface.
type mockIntakeRepository struct {
	CreateApplicationFunc func(ctx context.Context, a *entity.Application) error
	CreateInquiryFunc     func(ctx context.Context, i *entity.Inquiry) error
}

func (m *mockIntakeRepository) CreateApplication(ctx context.Context, a *entity.Application) error {
	if m.CreateApplicationFunc != nil {
		return m.CreateApplicationFunc(ctx, a)
	}
	return nil
}

func (m *mockIntakeRepository) CreateInquiry(ctx context.Context, i *entity.Inquiry) error {
	if m.CreateInquiryFunc != nil {
		return m.CreateInquiryFunc(ctx, i)
	}
	return nil
}

// mockPropertyFinder is a mock implementation of the PropertyFinder interface.
type mockPropertyFinder struct {
	ExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockPropertyFinder) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func TestIntakeUsecase_SubmitApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("persists against an existing property", func(t *testing.T) {
		var saved *entity.Application
		repo := &mockIntakeRepository{
			CreateApplicationFunc: func(ctx context.Context, a *entity.Application) error {
				saved = a
				return nil
			},
		}
		props := &mockPropertyFinder{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
				return true, nil
			},
		}

		uc := NewIntakeUsecase(repo, props)
		err := uc.SubmitApplication(ctx, 42, ApplicationInput{
			FullName: "Jordan Reyes",
			Email:    "jordan@example.com",
			Phone:    "555-0142",
			MoveIn:   "2026-10-01",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil {
			t.Fatal("application was not persisted")
		}
		if saved.PropertyID != 42 {
			t.Errorf("expected property 42, got %d", saved.PropertyID)
		}
		if saved.FullName != "Jordan Reyes" || saved.MoveIn != "2026-10-01" {
			t.Errorf("fields not carried over: %+v", saved)
		}
	})

	t.Run("missing property writes nothing", func(t *testing.T) {
		persisted := false
		repo := &mockIntakeRepository{
			CreateApplicationFunc: func(ctx context.Context, a *entity.Application) error {
				persisted = true
				return nil
			},
		}

		uc := NewIntakeUsecase(repo, &mockPropertyFinder{})
		err := uc.SubmitApplication(ctx, 99, ApplicationInput{FullName: "Jordan Reyes"})

		if !errors.Is(err, ErrPropertyNotFound) {
			t.Errorf("expected ErrPropertyNotFound, got: %v", err)
		}
		if persisted {
			t.Error("no application may be written for a missing property")
		}
	})

	t.Run("existence check failure is not ErrPropertyNotFound", func(t *testing.T) {
		props := &mockPropertyFinder{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) {
				return false, errors.New("db down")
			},
		}

		uc := NewIntakeUsecase(&mockIntakeRepository{}, props)
		err := uc.SubmitApplication(ctx, 42, ApplicationInput{})

		if err == nil {
			t.Fatal("expected error but got nil")
		}
		if errors.Is(err, ErrPropertyNotFound) {
			t.Error("a storage failure must not masquerade as a missing property")
		}
	})
}

func TestIntakeUsecase_SubmitInquiry(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the inquiry", func(t *testing.T) {
		var saved *entity.Inquiry
		repo := &mockIntakeRepository{
			CreateInquiryFunc: func(ctx context.Context, i *entity.Inquiry) error {
				saved = i
				return nil
			},
		}

		uc := NewIntakeUsecase(repo, &mockPropertyFinder{})
		err := uc.SubmitInquiry(ctx, InquiryInput{
			FullName: "Jordan Reyes",
			Email:    "jordan@example.com",
			Subject:  "Viewing request",
			Message:  "Is the loft available this weekend?",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil {
			t.Fatal("inquiry was not persisted")
		}
		if saved.Subject != "Viewing request" {
			t.Errorf("fields not carried over: %+v", saved)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &mockIntakeRepository{
			CreateInquiryFunc: func(ctx context.Context, i *entity.Inquiry) error {
				return errors.New("db down")
			},
		}

		uc := NewIntakeUsecase(repo, &mockPropertyFinder{})
		if err := uc.SubmitInquiry(ctx, InquiryInput{}); err == nil {
			t.Fatal("expected error but got nil")
		}
	})
}
