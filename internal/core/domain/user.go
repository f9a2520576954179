package domain

import "time"

const (
	RoleAdmin = "ADMIN"
	// RoleApplicant is the default role bound to every newly registered user.
	RoleApplicant = "APPLICANT"
)

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role is immutable reference data identifying a permission group.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleAssignment binds a user to exactly one role. The username is stored
// alongside the user id because every authentication path looks the
// assignment up by username. At most one assignment exists per user;
// reassignment overwrites the role reference in place.
type RoleAssignment struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	RoleID   string `json:"role_id"`
}
