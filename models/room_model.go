package models

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:100;not null;unique" json:"name"`
	Capacity int       `gorm:"default:0" json:"capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
