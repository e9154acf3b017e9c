package database

import (
	"encoding/json"
	"fmt"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"gorm.io/gorm"
)

type AmenityRepo struct {
	db *gorm.DB
}

func NewAmenityRepo(db *gorm.DB) *AmenityRepo {
	return &AmenityRepo{db}
}

// List returns amenities sorted by display order. Pagination and title
// search follow the same contract as ProjectRepo.List.
func (r *AmenityRepo) List(page, limit int, search string) ([]*models.Amenity, error) {
	var amenities []*models.Amenity
	q := r.db.Order("display_order asc, id asc").Scopes(pageScope(page, limit))
	if search != "" {
		q = q.Where("LOWER(title) LIKE ?", searchPattern(search))
	}
	err := q.Find(&amenities).Error
	return amenities, err
}

// Count returns the total number of amenities matching search.
func (r *AmenityRepo) Count(search string) (int64, error) {
	var count int64
	q := r.db.Model(&models.Amenity{})
	if search != "" {
		q = q.Where("LOWER(title) LIKE ?", searchPattern(search))
	}
	err := q.Count(&count).Error
	return count, err
}

// FindByID returns an amenity by its ID
func (r *AmenityRepo) FindByID(id uint) (*models.Amenity, error) {
	var amenity models.Amenity
	err := r.db.First(&amenity, id).Error
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

// Add inserts a new amenity into the database
func (r *AmenityRepo) Add(amenity *models.Amenity) error {
	return r.db.Create(amenity).Error
}

// Update applies a partial update to an amenity. Renaming an amenity does
// not cascade into projects that reference the old title.
func (r *AmenityRepo) Update(id uint, fields map[string]json.RawMessage) error {
	updates, err := amenityUpdates(fields)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Amenity{ID: id}).Updates(updates).Error
}

// Delete removes an amenity from the database by id
func (r *AmenityRepo) Delete(id uint) error {
	return r.db.Delete(&models.Amenity{}, id).Error
}

func amenityUpdates(fields map[string]json.RawMessage) (map[string]any, error) {
	updates := make(map[string]any, len(fields))
	for field, raw := range fields {
		var value any
		switch field {
		case "id":
			continue
		case "title", "description", "icon":
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, errs.NewValidationError(field, fmt.Sprintf("%s must be a string", field))
			}
			if field == "icon" && !models.ValidAmenityIcon(s) {
				return nil, errs.NewValidationError("icon", "unknown icon key")
			}
			value = s
		case "image":
			var s *string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, errs.NewValidationError(field, "image must be a string or null")
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
		updates[amenityColumn(field)] = value
	}
	return updates, nil
}

func amenityColumn(field string) string {
	if field == "displayOrder" {
		return "display_order"
	}
	return field
}
