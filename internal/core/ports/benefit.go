package ports

import (
	"context"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

// BenefitRepository defines persistence operations for benefits.
type BenefitRepository interface {
	Create(ctx context.Context, b *domain.Benefit) (*domain.Benefit, error)
	FindByID(ctx context.Context, id string) (*domain.Benefit, error)
	FindByName(ctx context.Context, name string) (*domain.Benefit, error)
	Update(ctx context.Context, b *domain.Benefit) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Benefit, error)
}

// CareerRepository defines persistence operations for careers.
type CareerRepository interface {
	Create(ctx context.Context, c *domain.Career) (*domain.Career, error)
	FindByID(ctx context.Context, id string) (*domain.Career, error)
	Update(ctx context.Context, c *domain.Career) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Career, error)
}
