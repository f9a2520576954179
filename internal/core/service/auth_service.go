package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/admision-lab/benefits-api/internal/api/metrics"
	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// AuthService implements registration and login. Registration binds the
// well-known default role; login embeds the user's current role in the token.
type AuthService struct {
	users       ports.UserRepository
	roles       ports.RoleRepository
	assignments ports.RoleAssignmentRepository
	tokens      ports.TokenIssuer
	limiter     ports.LoginLimiter // optional; nil disables throttling
	log         zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	assignments ports.RoleAssignmentRepository,
	tokens ports.TokenIssuer,
	limiter ports.LoginLimiter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		roles:       roles,
		assignments: assignments,
		tokens:      tokens,
		limiter:     limiter,
		log:         log,
	}
}

// Register creates a user, binds the default role, and returns a fresh token.
// The user write, role lookup, and assignment write are not atomic in the
// store: on a failure after the user row is committed, the user row is
// removed again so a retried request converges instead of leaving an
// account without a role.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return "", nil, err
	}

	role, err := s.roles.FindByName(ctx, domain.RoleApplicant)
	if err != nil {
		s.compensateRegister(ctx, created)
		if errors.Is(err, domain.ErrRoleNotFound) {
			s.log.Error().Str("role", domain.RoleApplicant).Msg("default role missing from catalog")
		}
		return "", nil, err
	}

	if err := s.assignments.Upsert(ctx, created.ID, created.Username, role.ID); err != nil {
		s.compensateRegister(ctx, created)
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.Username, role.Name)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("username", created.Username).Msg("user registered")
	return token, created, nil
}

// compensateRegister undoes the user write after a partial registration.
// Best effort: a leftover row is recoverable and must not mask the
// original failure.
func (s *AuthService) compensateRegister(ctx context.Context, user *domain.User) {
	if err := s.users.Delete(ctx, user.ID); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("registration cleanup failed")
	}
}

// Login verifies credentials and returns a token carrying the user's current
// role. Unknown username and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooMany(ctx, username)
		if err != nil {
			return "", nil, err
		}
		if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	role, err := s.currentRole(ctx, username)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.Username, role.Name)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, username)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// currentRole resolves the user's single active role assignment.
func (s *AuthService) currentRole(ctx context.Context, username string) (*domain.Role, error) {
	assignment, err := s.assignments.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.roles.FindByID(ctx, assignment.RoleID)
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if s.limiter != nil {
		_ = s.limiter.RecordFailure(ctx, username)
	}
}
