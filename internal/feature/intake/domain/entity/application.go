// Package entity defines the domain entities for the intake feature.
package entity

import "time"

// Application is a rental application submitted against a property.
// Applications are append-only; they are never updated or deleted, and they
// survive deletion of the property they reference.
type Application struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID uint   `gorm:"index;not null"`
	FullName   string `gorm:"size:120;not null"`
	Email      string `gorm:"size:120;not null"`
	Phone      string `gorm:"size:50;not null"`
	MoveIn     string `gorm:"size:40"`
	Message    string `gorm:"type:text"`
	CreatedAt  time.Time
}
