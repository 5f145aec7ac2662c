package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Class struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name   string     `gorm:"size:255;not null" json:"name"`
	RoomID *uuid.UUID `gorm:"" json:"room_id"`
	Fees   float64    `gorm:"type:numeric(10,2);not null;default:0.00" json:"fees"`

	// Recurring weekly pattern. Weekdays uses 0=Sunday..6=Saturday; StartTime
	// is "HH:MM". Either may be absent — a class can run on one-off sessions
	// alone.
	Weekdays  datatypes.JSONSlice[int] `gorm:"type:jsonb" json:"weekdays"`
	StartTime *string                  `gorm:"size:5" json:"start_time"`

	// One-off occurrences, independent of the recurring pattern.
	Sessions []ClassSession `gorm:"foreignkey:ClassID" json:"sessions,omitempty"`

	// Denormalized enrollment and assignment lists. The student side mirrors
	// Student.ClassIDs; enrollment handlers mutate both in one transaction.
	StudentIDs datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"student_ids"`
	TeacherIDs datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"teacher_ids"`

	// Special classes share fee revenue between assigned teachers and the
	// center. The two percentages are stored as entered; nothing forces them
	// to sum to 100.
	IsSpecial         bool    `gorm:"default:false" json:"is_special"`
	TeacherPercentage float64 `gorm:"type:numeric(5,2);default:0.00" json:"teacher_percentage"`
	CenterPercentage  float64 `gorm:"type:numeric(5,2);default:0.00" json:"center_percentage"`

	Room *Room `gorm:"foreignkey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
