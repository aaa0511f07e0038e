// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents an administrator account.
// Accounts are created once at bootstrap; there is no public signup.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is matched case-insensitively.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the display name shown in the admin area.
	Name string `gorm:"size:120;not null;default:Admin"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This must never store or expose a plaintext password.
	PasswordHash string `gorm:"size:255;not null"`

	// Active controls whether the account may sign in.
	Active bool `gorm:"not null;default:true"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
