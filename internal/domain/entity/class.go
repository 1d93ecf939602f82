// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClassType distinguishes scheduled live sessions from on-demand recordings.
type ClassType string

const (
	// ClassTypeLive is a scheduled session with a start time.
	ClassTypeLive ClassType = "live"
	// ClassTypeRecorded is an on-demand session with a video URL.
	ClassTypeRecorded ClassType = "recorded"
)

// String returns the string representation of the ClassType.
func (t ClassType) String() string {
	return string(t)
}

// IsValid checks if the ClassType is a valid value.
func (t ClassType) IsValid() bool {
	return t == ClassTypeLive || t == ClassTypeRecorded
}

// Class is a fitness class offered on the marketplace.
type Class struct {
	ID              uuid.UUID   // The unique ID for this class.
	Title           string      // Class title.
	Description     string      // Detailed description of the class.
	InstructorID    uuid.UUID   // The Instructor offering this class.
	DurationMinutes int         // Duration of the class in minutes.
	Type            ClassType   // live or recorded.
	Category        string      // e.g. yoga, cardio, strength, hiit, dance, pilates, other.
	Difficulty      string      // beginner, intermediate or advanced.
	Capacity        int         // Maximum number of enrolled users.
	Price           float64     // Price of the class.
	VideoURL        string      // Video URL; required for recorded classes.
	StartTime       *time.Time  // Start time; required for live classes.
	EnrolledUserIDs []uuid.UUID // Users currently enrolled.
	IsAvailable     bool        // Whether the class accepts enrollments.
	CreatedAt       time.Time   // Timestamp of when this class was created.
}

// IsEnrolled reports whether the given user already holds a seat.
func (c *Class) IsEnrolled(userID uuid.UUID) bool {
	for _, id := range c.EnrolledUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}

// IsFull reports whether the class has reached capacity.
func (c *Class) IsFull() bool {
	return len(c.EnrolledUserIDs) >= c.Capacity
}
