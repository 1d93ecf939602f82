package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel mirrors the 'classes' table. Enrollments are stored as a JSONB
// array of user IDs; the enroll operation mutates it inside a transaction.
type ClassModel struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title           string      `gorm:"type:varchar(200);not null"`
	Description     string      `gorm:"type:text"`
	InstructorID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	DurationMinutes int         `gorm:"not null"`
	Type            string      `gorm:"type:varchar(20);not null"`
	Category        string      `gorm:"type:varchar(100)"`
	Difficulty      string      `gorm:"type:varchar(20)"`
	Capacity        int         `gorm:"not null;default:0"`
	Price           float64     `gorm:"not null;default:0"`
	VideoURL        string      `gorm:"type:text"`
	StartTime       *time.Time  `gorm:""`
	EnrolledUserIDs []uuid.UUID `gorm:"serializer:json;type:jsonb"`
	IsAvailable     bool        `gorm:"not null;default:true"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClassModel) TableName() string {
	return "classes"
}
