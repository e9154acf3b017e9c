package models

import "time"

// Lead status values. The admin UI moves leads New -> Contacted -> Closed
// and treats Closed as terminal; the backend only validates membership, not
// transition order.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusClosed    = "Closed"
)

// Lead is a captured enquiry from one of the public forms. Content fields
// are immutable after creation; only the status changes afterwards.
type Lead struct {
	ID        uint      `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `json:"name" db:"name" gorm:"column:name;type:text;not null"`
	Phone     string    `json:"phone" db:"phone" gorm:"column:phone;type:text;not null"`
	Email     *string   `json:"email,omitempty" db:"email" gorm:"column:email;type:text"`
	Message   *string   `json:"message,omitempty" db:"message" gorm:"column:message;type:text"`
	Project   *string   `json:"project,omitempty" db:"project" gorm:"column:project;type:text"` // project slug, not an enforced FK
	Source    *string   `json:"source,omitempty" db:"source" gorm:"column:source;type:text"`    // which form captured it, e.g. "contact", "brochure"
	Status    string    `json:"status" db:"status" gorm:"column:status;type:text;not null;default:'New'"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName to override the default table name
func (Lead) TableName() string {
	return "leads"
}

// ValidLeadStatus reports whether s is one of the recognized status values.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusClosed:
		return true
	}
	return false
}
