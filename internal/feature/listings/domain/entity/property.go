// Package entity defines the domain entities for the listings feature.
package entity

import "time"

// Property represents a rental or sale listing.
type Property struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:150;not null"`
	Address     string `gorm:"size:200;not null"`
	City        string `gorm:"size:80;not null"`
	State       string `gorm:"size:40;not null"`
	Price       int    `gorm:"not null"`
	ForRent     bool   `gorm:"not null;default:true"`
	Beds        int    `gorm:"not null;default:1"`
	Baths       float64 `gorm:"not null;default:1.0"`
	Sqft        int    `gorm:"not null;default:500"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time

	// Images are deleted together with the property; the cascade is an
	// explicit repository operation, not left to ORM callbacks.
	Images []Image `gorm:"foreignKey:PropertyID"`
}

// Mode returns the listing mode string used on the public site and in forms.
func (p *Property) Mode() string {
	if p.ForRent {
		return "rent"
	}
	return "sale"
}
