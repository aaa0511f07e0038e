// Package usecase implements the business logic for public submissions.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"realty_backend/internal/feature/intake/domain/entity"
)

// ErrPropertyNotFound is returned when an application references a property
// ID that does not resolve.
var ErrPropertyNotFound = errors.New("property not found")

// IntakeRepository abstracts the persistence layer for submissions.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type IntakeRepository interface {
	CreateApplication(ctx context.Context, a *entity.Application) error
	CreateInquiry(ctx context.Context, i *entity.Inquiry) error
}

// PropertyFinder answers whether a property exists.
// Implemented by the listings repository.
type PropertyFinder interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// ApplicationInput is a validated rental application.
type ApplicationInput struct {
	FullName string
	Email    string
	Phone    string
	MoveIn   string
	Message  string
}

// InquiryInput is a validated contact message.
type InquiryInput struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
}

// IntakeUsecase persists rental applications and contact inquiries.
type IntakeUsecase struct {
	repo  IntakeRepository
	props PropertyFinder
}

// NewIntakeUsecase creates a new IntakeUsecase instance.
func NewIntakeUsecase(repo IntakeRepository, props PropertyFinder) *IntakeUsecase {
	return &IntakeUsecase{repo: repo, props: props}
}

// SubmitApplication persists a rental application against an existing
// property. Returns ErrPropertyNotFound when the property ID does not resolve.
func (u *IntakeUsecase) SubmitApplication(ctx context.Context, propertyID uint, in ApplicationInput) error {
	ok, err := u.props.Exists(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to check property: %w", err)
	}
	if !ok {
		return ErrPropertyNotFound
	}

	return u.repo.CreateApplication(ctx, &entity.Application{
		PropertyID: propertyID,
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		MoveIn:     in.MoveIn,
		Message:    in.Message,
	})
}

// SubmitInquiry persists a contact message.
func (u *IntakeUsecase) SubmitInquiry(ctx context.Context, in InquiryInput) error {
	return u.repo.CreateInquiry(ctx, &entity.Inquiry{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Subject:  in.Subject,
		Message:  in.Message,
	})
}
