package database

import (
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"gorm.io/gorm"
)

type LeadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) *LeadRepo {
	return &LeadRepo{db}
}

// List returns leads newest first. Search matches name and phone.
func (r *LeadRepo) List(page, limit int, search string) ([]*models.Lead, error) {
	var leads []*models.Lead
	q := r.db.Order("created_at desc, id desc").Scopes(pageScope(page, limit))
	if search != "" {
		p := searchPattern(search)
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", p, p)
	}
	err := q.Find(&leads).Error
	return leads, err
}

// Count returns the total number of leads matching search.
func (r *LeadRepo) Count(search string) (int64, error) {
	var count int64
	q := r.db.Model(&models.Lead{})
	if search != "" {
		p := searchPattern(search)
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", p, p)
	}
	err := q.Count(&count).Error
	return count, err
}

// FindByID returns a lead by its ID
func (r *LeadRepo) FindByID(id uint) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Add inserts a new lead into the database
func (r *LeadRepo) Add(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// UpdateStatus sets the lead status. Writing the current value again is a
// no-op and not an error, so the call is idempotent. Content fields are
// never updated after creation.
func (r *LeadRepo) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Lead{ID: id}).Update("status", status).Error
}

// Delete removes a lead from the database by id
func (r *LeadRepo) Delete(id uint) error {
	return r.db.Delete(&models.Lead{}, id).Error
}
