package ports

import (
	"context"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

// UserFilter narrows List results. Empty fields are ignored; string matches
// are case-insensitive partial matches.
type UserFilter struct {
	Username  string
	FirstName string
	LastName  string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
}

// RoleRepository reads the role catalog. Roles are reference data; the only
// write path is the startup seeding of well-known defaults.
type RoleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	EnsureDefaults(ctx context.Context) error
}

// RoleAssignmentRepository maintains the single active user-role binding.
// Upsert reuses the existing row for the user when one exists, replacing its
// role reference, so a user never accumulates assignments.
type RoleAssignmentRepository interface {
	Upsert(ctx context.Context, userID, username, roleID string) error
	FindByUsername(ctx context.Context, username string) (*domain.RoleAssignment, error)
	DeleteByUsername(ctx context.Context, username string) error
}
