package service

import (
	"context"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// CareerService is plain CRUD over the career catalog. Careers have no join
// fan-out; applicants referencing a deleted career surface ErrCareerNotFound
// on their next career lookup.
type CareerService struct {
	careers ports.CareerRepository
}

func NewCareerService(careers ports.CareerRepository) *CareerService {
	return &CareerService{careers: careers}
}

func (s *CareerService) Create(ctx context.Context, c *domain.Career) (*domain.Career, error) {
	return s.careers.Create(ctx, c)
}

func (s *CareerService) Get(ctx context.Context, id string) (*domain.Career, error) {
	return s.careers.FindByID(ctx, id)
}

func (s *CareerService) Update(ctx context.Context, id string, name, faculty string, code int64) (*domain.Career, error) {
	career, err := s.careers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	career.Name = name
	career.Faculty = faculty
	career.Code = code
	if err := s.careers.Update(ctx, career); err != nil {
		return nil, err
	}
	return career, nil
}

func (s *CareerService) Delete(ctx context.Context, id string) error {
	if _, err := s.careers.FindByID(ctx, id); err != nil {
		return err
	}
	return s.careers.Delete(ctx, id)
}

func (s *CareerService) List(ctx context.Context) ([]*domain.Career, error) {
	return s.careers.List(ctx)
}
