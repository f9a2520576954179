package domain

import "errors"

// Sentinel errors shared across services and repositories. Handlers and the
// central HTTP error handler resolve these with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrForbidden          = errors.New("access forbidden")

	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("invalid token signature")

	ErrApplicantNotFound   = errors.New("applicant not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrBenefitNotFound     = errors.New("benefit not found")
	ErrBenefitExists       = errors.New("benefit already exists")
	ErrCareerNotFound      = errors.New("career not found")
)
