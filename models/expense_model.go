package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExpenseKindRecurring = "recurring"
	ExpenseKindOneTime   = "one-time"
)

// Expense is a custom expense record. A "recurring" record represents a
// standing monthly obligation stored once — it is interpreted as a run-rate,
// not expanded into multiple ledger entries.
type Expense struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Category string    `gorm:"size:100;not null" json:"category"`
	Amount   float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Kind     string    `gorm:"size:20;not null;default:'one-time'" json:"kind"`
	Date     time.Time `gorm:"not null;type:date;index" json:"date"`
	Notes    *string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
