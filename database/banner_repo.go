package database

import (
	"encoding/json"
	"fmt"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"gorm.io/gorm"
)

type BannerRepo struct {
	db *gorm.DB
}

func NewBannerRepo(db *gorm.DB) *BannerRepo {
	return &BannerRepo{db}
}

// List returns banners sorted by display order.
func (r *BannerRepo) List(page, limit int, search string) ([]*models.Banner, error) {
	var banners []*models.Banner
	q := r.db.Order("display_order asc, id asc").Scopes(pageScope(page, limit))
	if search != "" {
		q = q.Where("LOWER(title) LIKE ?", searchPattern(search))
	}
	err := q.Find(&banners).Error
	return banners, err
}

// Count returns the total number of banners matching search.
func (r *BannerRepo) Count(search string) (int64, error) {
	var count int64
	q := r.db.Model(&models.Banner{})
	if search != "" {
		q = q.Where("LOWER(title) LIKE ?", searchPattern(search))
	}
	err := q.Count(&count).Error
	return count, err
}

// FindByID returns a banner by its ID
func (r *BannerRepo) FindByID(id uint) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.First(&banner, id).Error
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

// Add inserts a new banner into the database
func (r *BannerRepo) Add(banner *models.Banner) error {
	return r.db.Create(banner).Error
}

// Update applies a partial update to a banner.
func (r *BannerRepo) Update(id uint, fields map[string]json.RawMessage) error {
	updates, err := bannerUpdates(fields)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Banner{ID: id}).Updates(updates).Error
}

// Delete removes a banner from the database by id
func (r *BannerRepo) Delete(id uint) error {
	return r.db.Delete(&models.Banner{}, id).Error
}

func bannerUpdates(fields map[string]json.RawMessage) (map[string]any, error) {
	updates := make(map[string]any, len(fields))
	for field, raw := range fields {
		var value any
		switch field {
		case "id":
			continue
		case "title", "subtitle", "link", "image":
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, errs.NewValidationError(field, fmt.Sprintf("%s must be a string", field))
			}
			value = s
		case "displayOrder":
			var n int
			if err := json.Unmarshal(raw, &n); err != nil {
				return nil, errs.NewValidationError(field, "displayOrder must be an integer")
			}
			value = n
		default:
			return nil, errs.NewValidationError(field, fmt.Sprintf("unknown field %q", field))
		}
		if field == "displayOrder" {
			updates["display_order"] = value
		} else {
			updates[field] = value
		}
	}
	return updates, nil
}
