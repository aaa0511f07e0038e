// Package adapters provides repository implementations for the listings feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"realty_backend/internal/feature/listings/domain/entity"
	"realty_backend/internal/feature/listings/usecase"
)

// propertyGorm is a GORM implementation of the property repository.
type propertyGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure propertyGorm implements PropertyRepository.
var _ usecase.PropertyRepository = (*propertyGorm)(nil)

// NewPropertyGorm creates a new instance of propertyGorm with the given DB connection.
func NewPropertyGorm(db *gorm.DB) *propertyGorm {
	return &propertyGorm{db: db}
}

// Search returns properties matching the query, newest first.
// Substring matches use LOWER(...) LIKE so behavior is identical on SQLite
// and Postgres.
func (r *propertyGorm) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.Property, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.Property{}).
		Order("created_at DESC, id DESC")

	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?",
			like, like, like,
		)
	}
	if q.City != "" {
		tx = tx.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(q.City)+"%")
	}
	switch q.Mode {
	case "rent":
		tx = tx.Where("for_rent = ?", true)
	case "sale":
		tx = tx.Where("for_rent = ?", false)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var props []entity.Property
	if err := tx.Preload("Images").Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

// FindByID retrieves one property with its images.
// Returns usecase.ErrNotFound if no property exists.
func (r *propertyGorm) FindByID(ctx context.Context, id uint) (*entity.Property, error) {
	var p entity.Property
	if err := r.db.WithContext(ctx).
		Preload("Images").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Exists reports whether a property with the given ID exists.
// Consumed by the intake feature when accepting applications.
func (r *propertyGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Property{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a new property.
func (r *propertyGorm) Create(ctx context.Context, p *entity.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update overwrites all mutable fields of the property.
func (r *propertyGorm) Update(ctx context.Context, p *entity.Property) error {
	return r.db.WithContext(ctx).
		Model(&entity.Property{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"title":       p.Title,
			"address":     p.Address,
			"city":        p.City,
			"state":       p.State,
			"price":       p.Price,
			"for_rent":    p.ForRent,
			"beds":        p.Beds,
			"baths":       p.Baths,
			"sqft":        p.Sqft,
			"description": p.Description,
		}).Error
}

// DeleteCascade removes the property and its image rows in one transaction
// and returns the filenames of the deleted images so the caller can clean up
// the files. Returns usecase.ErrNotFound if the property does not exist.
func (r *propertyGorm) DeleteCascade(ctx context.Context, id uint) ([]string, error) {
	var filenames []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p entity.Property
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrNotFound
			}
			return err
		}
		if err := tx.Model(&entity.Image{}).
			Where("property_id = ?", id).
			Pluck("filename", &filenames).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&entity.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Property{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return filenames, nil
}

// AddImage records one stored image row for a property.
// Consumed by the uploads feature after a file write succeeds.
func (r *propertyGorm) AddImage(ctx context.Context, propertyID uint, filename string) error {
	return r.db.WithContext(ctx).Create(&entity.Image{
		PropertyID: propertyID,
		Filename:   filename,
	}).Error
}
