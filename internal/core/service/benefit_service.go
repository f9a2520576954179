package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// BenefitService implements benefit CRUD. A benefit is the right-hand parent
// of both join relations, so deleting one sweeps both join collections first.
type BenefitService struct {
	benefits         ports.BenefitRepository
	applicantLinks   ports.AssociationRepository
	applicationLinks ports.AssociationRepository
	log              zerolog.Logger
}

func NewBenefitService(
	benefits ports.BenefitRepository,
	applicantLinks ports.AssociationRepository,
	applicationLinks ports.AssociationRepository,
	log zerolog.Logger,
) *BenefitService {
	return &BenefitService{
		benefits:         benefits,
		applicantLinks:   applicantLinks,
		applicationLinks: applicationLinks,
		log:              log,
	}
}

func (s *BenefitService) Create(ctx context.Context, b *domain.Benefit) (*domain.Benefit, error) {
	return s.benefits.Create(ctx, b)
}

func (s *BenefitService) Get(ctx context.Context, id string) (*domain.Benefit, error) {
	return s.benefits.FindByID(ctx, id)
}

func (s *BenefitService) Update(ctx context.Context, id string, name string, code int64) (*domain.Benefit, error) {
	benefit, err := s.benefits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	benefit.Name = name
	benefit.Code = code
	if err := s.benefits.Update(ctx, benefit); err != nil {
		return nil, err
	}
	return benefit, nil
}

// Delete cascades both join relations before removing the benefit row.
func (s *BenefitService) Delete(ctx context.Context, id string) error {
	if _, err := s.benefits.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.applicantLinks.DeleteByRight(ctx, id); err != nil {
		return err
	}
	if err := s.applicationLinks.DeleteByRight(ctx, id); err != nil {
		return err
	}
	return s.benefits.Delete(ctx, id)
}

func (s *BenefitService) List(ctx context.Context) ([]*domain.Benefit, error) {
	return s.benefits.List(ctx)
}
