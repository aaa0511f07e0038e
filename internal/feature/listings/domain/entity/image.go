package entity

// Image is one uploaded photo belonging to a property.
// Filename is the property-scoped relative path "{property_id}/{name}", which
// is also the path suffix under the public /uploads route.
type Image struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID uint   `gorm:"index;not null"`
	Filename   string `gorm:"size:300;not null"`
}
