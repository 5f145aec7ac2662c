package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID     uuid.UUID  `gorm:"not null;index" json:"student_id"`
	ClassID       uuid.UUID  `gorm:"not null;index" json:"class_id"`
	Amount        float64    `gorm:"type:numeric(10,2);not null" json:"amount"`
	Month         string     `gorm:"size:7;not null" json:"month"` // "2006-01"
	Method        string     `gorm:"size:20;not null;default:'cash'" json:"method"`
	Status        string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	ReceiptNumber *string    `gorm:"size:20;unique" json:"receipt_number"`
	ReceiptURL    *string    `gorm:"size:255" json:"receipt_url"`
	PaidAt        *time.Time `json:"paid_at"`

	MerchantRequestID *string `gorm:"size:255;unique" json:"-"`
	ProviderTxnID     *string `gorm:"size:255;unique" json:"-"`

	Student Student `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Class   Class   `gorm:"foreignkey:ClassID" json:"class,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
