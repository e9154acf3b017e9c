package models

import (
	"time"

	"gorm.io/datatypes"
)

// BlogPost represents a blog article. Slug is the URL identity and is
// permanent once the post is published. Unpublished posts are only visible
// through the admin surface.
type BlogPost struct {
	Slug            string                      `json:"slug" db:"slug" gorm:"column:slug;type:text;primaryKey"`
	Title           string                      `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Content         string                      `json:"content" db:"content" gorm:"column:content;type:text;not null"`
	Excerpt         *string                     `json:"excerpt,omitempty" db:"excerpt" gorm:"column:excerpt;type:text"`
	MetaDescription *string                     `json:"metaDescription,omitempty" db:"meta_description" gorm:"column:meta_description;type:text"`
	Image           *string                     `json:"image,omitempty" db:"image" gorm:"column:image;type:text"`
	Tags            datatypes.JSONSlice[string] `json:"tags" db:"tags" gorm:"column:tags"`
	Author          string                      `json:"author" db:"author" gorm:"column:author;type:text"`
	Published       bool                        `json:"published" db:"published" gorm:"column:published;not null;default:false"`
	PublishedAt     *time.Time                  `json:"publishedAt,omitempty" db:"published_at" gorm:"column:published_at"`
	CreatedAt       time.Time                   `json:"createdAt" db:"created_at" gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName to override the default table name
func (BlogPost) TableName() string {
	return "posts"
}
