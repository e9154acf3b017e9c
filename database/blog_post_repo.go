package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// List returns blog posts newest first. publishedOnly restricts the result
// to posts gated for public listing; the admin surface passes false.
func (r *BlogPostRepo) List(page, limit int, search string, publishedOnly bool) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	q := r.db.Order("created_at desc, slug asc").Scopes(pageScope(page, limit))
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if search != "" {
		q = q.Where("LOWER(title) LIKE ?", searchPattern(search))
	}
	err := q.Find(&posts).Error
	return posts, err
}

// Count returns the total number of blog posts matching the same filters as List.
func (r *BlogPostRepo) Count(search string, publishedOnly bool) (int64, error) {
	var count int64
	q := r.db.Model(&models.BlogPost{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if search != "" {
		q = q.Where("LOWER(title) LIKE ?", searchPattern(search))
	}
	err := q.Count(&count).Error
	return count, err
}

// FindBySlug returns a blog post by its slug
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update applies a partial update to a blog post. The slug itself is
// immutable once published.
func (r *BlogPostRepo) Update(slug string, fields map[string]json.RawMessage) error {
	updates, err := blogPostUpdates(fields)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.BlogPost{Slug: slug}).Updates(updates).Error
}

// Delete removes a blog post from the database by slug
func (r *BlogPostRepo) Delete(slug string) error {
	return r.db.Delete(&models.BlogPost{}, "slug = ?", slug).Error
}

func blogPostUpdates(fields map[string]json.RawMessage) (map[string]any, error) {
	updates := make(map[string]any, len(fields))
	for field, raw := range fields {
		var value any
		switch field {
		case "slug":
			continue
		case "title", "content", "author":
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, errs.NewValidationError(field, fmt.Sprintf("%s must be a string", field))
			}
			value = s
		case "excerpt", "metaDescription", "image":
			var s *string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, errs.NewValidationError(field, fmt.Sprintf("%s must be a string or null", field))
			}
			value = s
		case "tags":
			var tags datatypes.JSONSlice[string]
			if err := json.Unmarshal(raw, &tags); err != nil {
				return nil, errs.NewValidationError(field, "tags must be an array of strings")
			}
			value = tags
		case "published":
			var b bool
			if err := json.Unmarshal(raw, &b); err != nil {
				return nil, errs.NewValidationError(field, "published must be a boolean")
			}
			value = b
		case "publishedAt":
			var t *time.Time
			if err := json.Unmarshal(raw, &t); err != nil {
				return nil, errs.NewValidationError(field, "publishedAt must be an RFC3339 timestamp or null")
			}
			value = t
		default:
			return nil, errs.NewValidationError(field, fmt.Sprintf("unknown field %q", field))
		}
		updates[blogPostColumn(field)] = value
	}
	return updates, nil
}

func blogPostColumn(field string) string {
	switch field {
	case "metaDescription":
		return "meta_description"
	case "publishedAt":
		return "published_at"
	}
	return field
}
