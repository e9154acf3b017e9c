package models

import "time"

// AdminUser is an account allowed into the admin panel. Rows are created by
// cmd/create-admin, never through the API.
type AdminUser struct {
	ID           uint      `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Email        string    `json:"email" db:"email" gorm:"column:email;type:text;not null;unique"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"column:password_hash;type:text;not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName to override the default table name
func (AdminUser) TableName() string {
	return "admin_users"
}
