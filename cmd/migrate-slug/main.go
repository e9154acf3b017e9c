package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/config"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
)

// Renames a project slug. Slugs are permanent identifiers, so a rename is
// really create-new, rewrite-references, delete-old, done in one
// transaction:
//
//	go run ./cmd/migrate-slug -from old-slug -to new-slug
func main() {
	from := flag.String("from", "", "existing project slug")
	to := flag.String("to", "", "new project slug")
	flag.Parse()

	if *from == "" || *to == "" || *from == *to {
		fmt.Println("Usage: migrate-slug -from <old-slug> -to <new-slug>")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	db, err := openDB()
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	var rewritten int64
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.Project
		if err := tx.First(&existing, "id = ?", *to).Error; err == nil {
			return fmt.Errorf("target slug %q already exists", *to)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var project models.Project
		if err := tx.First(&project, "id = ?", *from).Error; err != nil {
			return fmt.Errorf("loading %q: %w", *from, err)
		}

		// Step 1: create the row under the new slug
		project.ID = *to
		if err := tx.Create(&project).Error; err != nil {
			return fmt.Errorf("creating %q: %w", *to, err)
		}

		// Step 2: rewrite lead references to the old slug
		res := tx.Model(&models.Lead{}).Where("project = ?", *from).Update("project", *to)
		if res.Error != nil {
			return fmt.Errorf("rewriting lead references: %w", res.Error)
		}
		rewritten = res.RowsAffected

		// Step 3: drop the old row
		if err := tx.Delete(&models.Project{}, "id = ?", *from).Error; err != nil {
			return fmt.Errorf("deleting %q: %w", *from, err)
		}
		return nil
	})
	if err != nil {
		fmt.Printf("Migration failed, nothing changed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Renamed %q -> %q, rewrote %d lead reference(s)\n", *from, *to, rewritten)
}

func openDB() (*gorm.DB, error) {
	c := config.New()
	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(c, "DB_HOST", "localhost"),
		config.GetString(c, "DB_USER", "postgres"),
		config.GetString(c, "DB_PASSWORD", ""),
		config.GetString(c, "DB_NAME", "liferepublic"),
		config.GetString(c, "DB_PORT", "5432"),
		config.GetString(c, "DB_SSLMODE", "require"),
	)
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}
