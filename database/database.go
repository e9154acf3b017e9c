package database

import (
	"strings"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo   *ProjectRepo
	amenityRepo   *AmenityRepo
	bannerRepo    *BannerRepo
	leadRepo      *LeadRepo
	blogPostRepo  *BlogPostRepo
	adminUserRepo *AdminUserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:   NewProjectRepo(db),
		amenityRepo:   NewAmenityRepo(db),
		bannerRepo:    NewBannerRepo(db),
		leadRepo:      NewLeadRepo(db),
		blogPostRepo:  NewBlogPostRepo(db),
		adminUserRepo: NewAdminUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) AmenityRepo() *AmenityRepo {
	return d.amenityRepo
}

func (d Database) BannerRepo() *BannerRepo {
	return d.bannerRepo
}

func (d Database) LeadRepo() *LeadRepo {
	return d.leadRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}

// Migrate creates or updates every table this service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Amenity{},
		&models.Banner{},
		&models.Lead{},
		&models.BlogPost{},
		&models.AdminUser{},
	)
}

// searchPattern builds the LOWER(...) LIKE pattern for case-insensitive
// substring search. LOWER + LIKE instead of ILIKE keeps the query portable
// between postgres and the sqlite used in tests.
func searchPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// pageScope applies the inclusive zero-based row range
// [(page-1)*limit, page*limit-1]. Zero or negative values disable paging.
func pageScope(page, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page > 0 && limit > 0 {
			return db.Offset((page - 1) * limit).Limit(limit)
		}
		return db
	}
}
