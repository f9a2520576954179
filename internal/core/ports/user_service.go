package ports

import (
	"context"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

// CreateUserInput carries the data for an admin-created account, which binds
// an explicit role instead of the registration default.
type CreateUserInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	RoleID    string
}

// UpdateUserInput replaces profile fields and, when RoleID is non-empty,
// overwrites the user's role assignment.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	RoleID    string
}

// UserView is a user together with its resolved role.
type UserView struct {
	User *domain.User `json:"user"`
	Role *domain.Role `json:"role,omitempty"`
}

// UserService defines administrative user operations.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id, newPassword string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter) ([]*UserView, error)
}
