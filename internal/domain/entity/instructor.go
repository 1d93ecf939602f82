// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Instructor holds the marketplace profile of a user with the instructor role.
type Instructor struct {
	ID              uuid.UUID // The unique ID for this instructor profile.
	UserID          uuid.UUID // The User account this profile belongs to.
	Biography       string    // Short biography shown on the instructor page.
	Specialties     []string  // Disciplines the instructor teaches.
	ExperienceYears int       // Years of teaching experience.
	AverageRating   float64   // Mean review rating, 0 when unreviewed.
	TotalReviews    int       // Number of reviews behind AverageRating.
	IsVerified      bool      // Whether the platform has verified this instructor.
	CreatedAt       time.Time // Timestamp of when this profile was created.
}
