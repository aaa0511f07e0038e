package entity

import "time"

// Inquiry is a general contact message. Append-only, tied to nothing.
type Inquiry struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"size:120;not null"`
	Email     string `gorm:"size:120;not null"`
	Phone     string `gorm:"size:50"`
	Subject   string `gorm:"size:200;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
