package ports

import (
	"context"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

// CreateApplicantInput carries the data needed to create an applicant.
type CreateApplicantInput struct {
	UserID   string
	Name     string
	RUT      string
	CareerID string
	Address  string
	NEM      float64
	Ranking  float64
}

// UpdateApplicantInput carries a partial update; nil fields are left as-is.
type UpdateApplicantInput struct {
	Name     *string
	RUT      *string
	CareerID *string
	Address  *string
	NEM      *float64
	Ranking  *float64
}

// ApplicantRepository defines persistence operations for applicants.
type ApplicantRepository interface {
	Create(ctx context.Context, a *domain.Applicant) (*domain.Applicant, error)
	FindByID(ctx context.Context, id string) (*domain.Applicant, error)
	Update(ctx context.Context, a *domain.Applicant) error
	Delete(ctx context.Context, id string) error
	ListByName(ctx context.Context, name string) ([]*domain.Applicant, error)
	ListByRUT(ctx context.Context, rut string) ([]*domain.Applicant, error)
}

// ApplicantService defines use-case operations for applicants.
type ApplicantService interface {
	Create(ctx context.Context, input CreateApplicantInput) (*domain.Applicant, error)
	Get(ctx context.Context, id string) (*domain.Applicant, error)
	Update(ctx context.Context, id string, input UpdateApplicantInput) (*domain.Applicant, error)
	Delete(ctx context.Context, id string) error
	ListByName(ctx context.Context, name string) ([]*domain.Applicant, error)
	ListByRUT(ctx context.Context, rut string) ([]*domain.Applicant, error)
}
