package models

// amenityIcons is the fixed set of icon keys the frontend knows how to
// render. Icon values outside this set fall back to the generic marker
// client-side, so writes are validated against it.
var amenityIcons = map[string]struct{}{
	"clubhouse": {},
	"pool":      {},
	"gym":       {},
	"park":      {},
	"sports":    {},
	"security":  {},
	"theatre":   {},
	"yoga":      {},
	"kids":      {},
	"jogging":   {},
}

// Amenity represents a township-level amenity. Projects reference amenities
// by title, not id; renaming an amenity does not update projects that still
// carry the old title (documented limitation).
type Amenity struct {
	ID           uint    `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title        string  `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Description  string  `json:"description" db:"description" gorm:"column:description;type:text"`
	Icon         string  `json:"icon" db:"icon" gorm:"column:icon;type:text;not null"`
	Image        *string `json:"image,omitempty" db:"image" gorm:"column:image;type:text"`
	DisplayOrder int     `json:"displayOrder" db:"display_order" gorm:"column:display_order;not null;default:0"`
}

// TableName to override the default table name
func (Amenity) TableName() string {
	return "amenities"
}

// ValidAmenityIcon reports whether icon is a known icon key.
func ValidAmenityIcon(icon string) bool {
	_, ok := amenityIcons[icon]
	return ok
}
