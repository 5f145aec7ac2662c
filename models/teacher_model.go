package models

import (
	"time"

	"github.com/google/uuid"
)

type Teacher struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Phone    *string   `gorm:"size:20" json:"phone"`
	Email    *string   `gorm:"size:255" json:"email"`
	Subject  *string   `gorm:"size:100" json:"subject"`
	Salary   float64   `gorm:"type:numeric(10,2);default:0.00" json:"salary"`
	PhotoURL *string   `gorm:"size:255" json:"photo_url"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
