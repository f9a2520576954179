package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// UserService implements administrative user management. Role changes are
// delete-free: the single assignment row is overwritten, never duplicated.
type UserService struct {
	users       ports.UserRepository
	roles       ports.RoleRepository
	assignments ports.RoleAssignmentRepository
	log         zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	assignments ports.RoleAssignmentRepository,
	log zerolog.Logger,
) *UserService {
	return &UserService{users: users, roles: roles, assignments: assignments, log: log}
}

// Create stores an admin-provisioned user with an explicit role.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role, err := s.roles.FindByID(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	if err := s.assignments.Upsert(ctx, created.ID, created.Username, role.ID); err != nil {
		if derr := s.users.Delete(ctx, created.ID); derr != nil && !errors.Is(derr, domain.ErrUserNotFound) {
			s.log.Error().Err(derr).Str("user_id", created.ID).Msg("user cleanup failed")
		}
		return nil, err
	}
	return created, nil
}

// Update replaces profile fields. A non-empty RoleID overwrites the user's
// role assignment in place.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email

	if input.RoleID != "" {
		role, err := s.roles.FindByID(ctx, input.RoleID)
		if err != nil {
			return nil, err
		}
		if err := s.assignments.Upsert(ctx, user.ID, user.Username, role.ID); err != nil {
			return nil, err
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword re-hashes and stores a new secret. This is the only
// operation that mutates the stored hash.
func (s *UserService) ChangePassword(ctx context.Context, id, newPassword string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, string(hash))
}

// Delete removes the user's role assignment first, then the user row. The
// store has no foreign-key cascade, so ordering is what keeps a crash
// recoverable: a user without an assignment can be deleted again, an
// assignment without a user cannot be reached.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.assignments.DeleteByUsername(ctx, user.Username); err != nil && !errors.Is(err, domain.ErrRoleNotFound) {
		return err
	}
	return s.users.Delete(ctx, id)
}

// List returns users matching the filter, each with its resolved role.
// Users caught mid-registration without an assignment are listed without one.
func (s *UserService) List(ctx context.Context, filter ports.UserFilter) ([]*ports.UserView, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.UserView, 0, len(users))
	for _, u := range users {
		view := &ports.UserView{User: u}
		if assignment, err := s.assignments.FindByUsername(ctx, u.Username); err == nil {
			if role, err := s.roles.FindByID(ctx, assignment.RoleID); err == nil {
				view.Role = role
			}
		}
		views = append(views, view)
	}
	return views, nil
}
