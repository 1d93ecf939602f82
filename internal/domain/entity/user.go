// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the marketplace. It carries the
// credential hash alongside the public profile fields; the hash must never
// leave the persistence and usecase layers.
type User struct {
	ID           uuid.UUID // The unique ID for this user account.
	Name         string    // The user's display name.
	Email        string    // The user's login identifier; unique across all users.
	PasswordHash string    // Bcrypt hash of the user's password.
	Role         Role      // The user's role: user, instructor or admin.
	FitnessGoals string    // Free-text notes describing the user's fitness goals.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// PublicUser is the subset of User that may appear in API responses.
type PublicUser struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	FitnessGoals string    `json:"fitnessGoals,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public strips the credential hash and internal fields from a User.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		FitnessGoals: u.FitnessGoals,
		CreatedAt:    u.CreatedAt,
	}
}
