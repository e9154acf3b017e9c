package models

// Banner is one slide of the homepage hero carousel.
type Banner struct {
	ID           uint   `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title        string `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Subtitle     string `json:"subtitle" db:"subtitle" gorm:"column:subtitle;type:text"`
	Link         string `json:"link" db:"link" gorm:"column:link;type:text"`
	Image        string `json:"image" db:"image" gorm:"column:image;type:text;not null"`
	DisplayOrder int    `json:"displayOrder" db:"display_order" gorm:"column:display_order;not null;default:0"`
}

// TableName to override the default table name
func (Banner) TableName() string {
	return "banners"
}

// DefaultBanners returns the hardcoded fallback slides served when the
// banners table is empty, so the homepage never renders an empty carousel.
func DefaultBanners() []Banner {
	return []Banner{
		{
			Title:        "Life Republic Township",
			Subtitle:     "430 acres of thoughtfully planned living near Hinjawadi",
			Link:         "/projects",
			Image:        "/images/banners/township-aerial.webp",
			DisplayOrder: 1,
		},
		{
			Title:        "Homes For Every Stage Of Life",
			Subtitle:     "1 BHK to 5 BHK residences across nine sectors",
			Link:         "/projects",
			Image:        "/images/banners/residences.webp",
			DisplayOrder: 2,
		},
		{
			Title:        "40+ Lifestyle Amenities",
			Subtitle:     "Clubhouse, sports arenas, parks and more",
			Link:         "/amenities",
			Image:        "/images/banners/amenities.webp",
			DisplayOrder: 3,
		},
	}
}
