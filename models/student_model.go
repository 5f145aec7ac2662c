package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Student struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName           string    `gorm:"size:255;not null" json:"full_name"`
	Phone              *string   `gorm:"size:20" json:"phone"`
	Email              *string   `gorm:"size:255" json:"email"`
	GuardianName       *string   `gorm:"size:255" json:"guardian_name"`
	GuardianPhone      *string   `gorm:"size:20" json:"guardian_phone"`
	HasDiscount        bool      `gorm:"default:false" json:"has_discount"`
	DiscountPercentage float64   `gorm:"type:numeric(5,2);default:0.00" json:"discount_percentage"`
	PhotoURL           *string   `gorm:"size:255" json:"photo_url"`

	// Mirror of Class.StudentIDs; enrollment handlers keep both sides in sync.
	ClassIDs datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"class_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
