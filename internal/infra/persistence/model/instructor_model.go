package model

import (
	"time"

	"github.com/google/uuid"
)

// InstructorModel mirrors the 'instructors' table. One profile per instructor user.
type InstructorModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;unique;not null"`
	Biography       string    `gorm:"type:text"`
	Specialties     []string  `gorm:"serializer:json;type:jsonb"`
	ExperienceYears int       `gorm:"not null;default:0"`
	AverageRating   float64   `gorm:"not null;default:0"`
	TotalReviews    int       `gorm:"not null;default:0"`
	IsVerified      bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (InstructorModel) TableName() string {
	return "instructors"
}
