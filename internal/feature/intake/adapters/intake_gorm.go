// Package adapters provides repository implementations for the intake feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"realty_backend/internal/feature/intake/domain/entity"
	"realty_backend/internal/feature/intake/usecase"
)

// intakeGorm is a GORM implementation of the IntakeRepository interface.
type intakeGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure intakeGorm implements IntakeRepository.
var _ usecase.IntakeRepository = (*intakeGorm)(nil)

// NewIntakeGorm creates a new instance of intakeGorm with the given DB connection.
func NewIntakeGorm(db *gorm.DB) *intakeGorm {
	return &intakeGorm{db: db}
}

// CreateApplication persists a rental application.
func (r *intakeGorm) CreateApplication(ctx context.Context, a *entity.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// CreateInquiry persists a contact message.
func (r *intakeGorm) CreateInquiry(ctx context.Context, i *entity.Inquiry) error {
	return r.db.WithContext(ctx).Create(i).Error
}
