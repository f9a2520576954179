package ports

import (
	"context"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

// CreateApplicationInput carries the data needed to submit an application.
// The career is resolved from the applicant, never supplied by the caller.
type CreateApplicationInput struct {
	ApplicantID string
	EntryYear   string
	Benefits    []string // benefit names requested with the application
}

// UpdateApplicationInput replaces the mutable fields of an application.
type UpdateApplicationInput struct {
	EntryYear string
	Benefits  []string
}

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	Update(ctx context.Context, a *domain.Application) error
	Delete(ctx context.Context, id string) error
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error)
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	Create(ctx context.Context, input CreateApplicationInput) (*domain.Application, error)
	Update(ctx context.Context, id string, input UpdateApplicationInput) (*domain.Application, error)
	Delete(ctx context.Context, id string) error
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error)
}
