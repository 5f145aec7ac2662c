package models

import (
	"time"

	"github.com/google/uuid"
)

// ClassSession is an explicit one-off occurrence of a class. Sessions are
// created by an operator and never generated from the recurring pattern.
type ClassSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClassID   uuid.UUID `gorm:"not null;index" json:"class_id"`
	Date      time.Time `gorm:"not null;type:date" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`

	CreatedAt time.Time `json:"created_at"`
}
