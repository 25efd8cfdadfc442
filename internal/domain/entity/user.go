// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record of the platform. A user owns blogs,
// comments, likes and follow relations; deleting a user removes all of them.
type User struct {
	ID           int64     // Numeric identifier, assigned by the store at creation.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; never serialized to callers.
	FirstName    string    // Display first name.
	LastName     string    // Optional display last name.
	PhotoURL     string    // Profile picture location, empty until uploaded.
	IsVerified   bool      // Flipped to true exactly once by a successful OTP check.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
