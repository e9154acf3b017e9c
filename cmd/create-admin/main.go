package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/auth"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/config"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
)

// Creates an admin panel account. Accounts are never created through the
// API, only with this tool.
//
//	go run ./cmd/create-admin -email admin@example.com -password <password>
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password (min 8 characters)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: create-admin -email <email> -password <password>")
		os.Exit(1)
	}
	if err := auth.ValidatePassword(*password); err != nil {
		fmt.Printf("Invalid password: %v\n", err)
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

	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		fmt.Printf("Error migrating admin_users: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	admin := models.AdminUser{Email: *email, PasswordHash: hash}
	if err := db.Create(&admin).Error; err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created admin %s (id %d)\n", admin.Email, admin.ID)
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
