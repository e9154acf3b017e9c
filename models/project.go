package models

import "gorm.io/datatypes"

// Project status values shown on the public catalog.
const (
	ProjectStatusAvailable  = "Available"
	ProjectStatusSoldOut    = "Sold Out"
	ProjectStatusComingSoon = "Coming Soon"
)

// Project represents a residential project in the township catalog.
// ID is the URL slug and is treated as permanent once published; renaming
// a slug goes through cmd/migrate-slug rather than an in-place update.
type Project struct {
	ID           string                            `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	Title        string                            `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Category     string                            `json:"category" db:"category" gorm:"column:category;type:text;not null"`
	Location     string                            `json:"location" db:"location" gorm:"column:location;type:text;not null"`
	Price        string                            `json:"price" db:"price" gorm:"column:price;type:text;not null"` // display string, e.g. "₹74 Lakhs*" or "Request Price"
	Image        string                            `json:"image" db:"image" gorm:"column:image;type:text;not null"`
	Description  string                            `json:"description" db:"description" gorm:"column:description;type:text"`
	Overview     *string                           `json:"overview,omitempty" db:"overview" gorm:"column:overview;type:text"`
	Features     datatypes.JSONSlice[string]       `json:"features" db:"features" gorm:"column:features"`
	Amenities    datatypes.JSONSlice[string]       `json:"amenities" db:"amenities" gorm:"column:amenities"` // amenity titles, not ids
	MasterLayout *string                           `json:"masterLayout,omitempty" db:"master_layout" gorm:"column:master_layout;type:text"`
	FloorPlans   datatypes.JSONSlice[string]       `json:"floorPlans" db:"floor_plans" gorm:"column:floor_plans"`
	Gallery      datatypes.JSONSlice[GalleryEntry] `json:"gallery" db:"gallery" gorm:"column:gallery"`
	Status       string                            `json:"status" db:"status" gorm:"column:status;type:text;not null;default:'Available'"`
	ThemeColor   *string                           `json:"themeColor,omitempty" db:"theme_color" gorm:"column:theme_color;type:text"`
	Rera         *string                           `json:"rera,omitempty" db:"rera" gorm:"column:rera;type:text"`
}

// TableName to override the default table name
func (Project) TableName() string {
	return "projects"
}

// ValidProjectStatus reports whether s is one of the recognized status values.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusAvailable, ProjectStatusSoldOut, ProjectStatusComingSoon:
		return true
	}
	return false
}
