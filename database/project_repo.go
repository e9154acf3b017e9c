package database

import (
	"encoding/json"
	"fmt"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// projectColumns maps request field names to storage columns. Only the
// multi-word fields differ; every other field maps to its own name.
var projectColumns = map[string]string{
	"masterLayout": "master_layout",
	"floorPlans":   "floor_plans",
	"themeColor":   "theme_color",
}

func projectColumn(field string) string {
	if col, ok := projectColumns[field]; ok {
		return col
	}
	return field
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// List returns projects in slug order. When page and limit are positive the
// inclusive row range [(page-1)*limit, page*limit-1] is applied; when search
// is non-empty a case-insensitive substring match over title and location
// filters the result.
func (r *ProjectRepo) List(page, limit int, search string) ([]*models.Project, error) {
	var projects []*models.Project
	q := r.db.Order("id asc").Scopes(pageScope(page, limit))
	if search != "" {
		p := searchPattern(search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", p, p)
	}
	err := q.Find(&projects).Error
	return projects, err
}

// Count returns the total number of projects matching search. Issued
// independently of List, so the two can observe different snapshots under
// concurrent writes.
func (r *ProjectRepo) Count(search string) (int64, error) {
	var count int64
	q := r.db.Model(&models.Project{})
	if search != "" {
		p := searchPattern(search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", p, p)
	}
	err := q.Count(&count).Error
	return count, err
}

// FindByID returns a project by its slug
func (r *ProjectRepo) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update applies a partial update: only the fields present in the request
// body are mapped to their storage columns and written; everything else is
// left untouched server-side.
func (r *ProjectRepo) Update(id string, fields map[string]json.RawMessage) error {
	updates, err := projectUpdates(fields)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Project{ID: id}).Updates(updates).Error
}

// Delete removes a project from the database by slug. References held by
// leads are not touched.
func (r *ProjectRepo) Delete(id string) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// projectUpdates decodes each provided field into its typed value, keyed by
// storage column. Unknown fields are rejected rather than silently dropped.
func projectUpdates(fields map[string]json.RawMessage) (map[string]any, error) {
	updates := make(map[string]any, len(fields))
	for field, raw := range fields {
		var value any
		switch field {
		case "id":
			// slug is immutable; renames go through cmd/migrate-slug
			continue
		case "title", "category", "location", "price", "image", "description", "status":
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, errs.NewValidationError(field, fmt.Sprintf("%s must be a string", field))
			}
			if field == "status" && !models.ValidProjectStatus(s) {
				return nil, errs.NewValidationError("status", "unknown project status")
			}
			value = s
		case "overview", "masterLayout", "themeColor", "rera":
			var s *string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, errs.NewValidationError(field, fmt.Sprintf("%s must be a string or null", field))
			}
			value = s
		case "features", "amenities", "floorPlans":
			var list datatypes.JSONSlice[string]
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, errs.NewValidationError(field, fmt.Sprintf("%s must be an array of strings", field))
			}
			value = list
		case "gallery":
			var gallery datatypes.JSONSlice[models.GalleryEntry]
			if err := json.Unmarshal(raw, &gallery); err != nil {
				return nil, errs.NewValidationError(field, "gallery must be an array of URLs or {url, alt} objects")
			}
			value = gallery
		default:
			return nil, errs.NewValidationError(field, fmt.Sprintf("unknown field %q", field))
		}
		updates[projectColumn(field)] = value
	}
	return updates, nil
}
