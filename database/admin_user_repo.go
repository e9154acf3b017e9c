package database

import (
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"gorm.io/gorm"
)

type AdminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db}
}

// FindByEmail returns the admin account with the given email
func (r *AdminUserRepo) FindByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.First(&admin, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByID returns the admin account with the given id
func (r *AdminUserRepo) FindByID(id uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.First(&admin, id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Add inserts a new admin account into the database
func (r *AdminUserRepo) Add(admin *models.AdminUser) error {
	return r.db.Create(admin).Error
}
