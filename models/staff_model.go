package models

import (
	"time"

	"github.com/google/uuid"
)

type Staff struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Title    string    `gorm:"size:100;not null" json:"title"`
	Phone    *string   `gorm:"size:20" json:"phone"`
	Salary   float64   `gorm:"type:numeric(10,2);default:0.00" json:"salary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
