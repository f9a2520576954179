package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// ApplicantServiceImpl implements applicant CRUD. Deleting an applicant
// cascades its benefit join rows first, since the store will not.
type ApplicantServiceImpl struct {
	applicants ports.ApplicantRepository
	users      ports.UserRepository
	careers    ports.CareerRepository
	links      ports.AssociationRepository // applicant-benefit join rows
	log        zerolog.Logger
}

func NewApplicantService(
	applicants ports.ApplicantRepository,
	users ports.UserRepository,
	careers ports.CareerRepository,
	links ports.AssociationRepository,
	log zerolog.Logger,
) *ApplicantServiceImpl {
	return &ApplicantServiceImpl{
		applicants: applicants,
		users:      users,
		careers:    careers,
		links:      links,
		log:        log,
	}
}

// Create validates that the owning user and target career exist before
// inserting the applicant.
func (s *ApplicantServiceImpl) Create(ctx context.Context, input ports.CreateApplicantInput) (*domain.Applicant, error) {
	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if _, err := s.careers.FindByID(ctx, input.CareerID); err != nil {
		return nil, err
	}

	applicant := &domain.Applicant{
		UserID:   input.UserID,
		Name:     input.Name,
		RUT:      NormalizeRUT(input.RUT),
		CareerID: input.CareerID,
		Address:  input.Address,
		NEM:      input.NEM,
		Ranking:  input.Ranking,
	}

	created, err := s.applicants.Create(ctx, applicant)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("applicant_id", created.ID).Str("career_id", created.CareerID).Msg("applicant created")
	return created, nil
}

func (s *ApplicantServiceImpl) Get(ctx context.Context, id string) (*domain.Applicant, error) {
	return s.applicants.FindByID(ctx, id)
}

// Update applies the non-nil fields. A career change is validated against
// the catalog before being stored.
func (s *ApplicantServiceImpl) Update(ctx context.Context, id string, input ports.UpdateApplicantInput) (*domain.Applicant, error) {
	applicant, err := s.applicants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		applicant.Name = *input.Name
	}
	if input.RUT != nil {
		applicant.RUT = NormalizeRUT(*input.RUT)
	}
	if input.CareerID != nil {
		if _, err := s.careers.FindByID(ctx, *input.CareerID); err != nil {
			return nil, err
		}
		applicant.CareerID = *input.CareerID
	}
	if input.Address != nil {
		applicant.Address = *input.Address
	}
	if input.NEM != nil {
		applicant.NEM = *input.NEM
	}
	if input.Ranking != nil {
		applicant.Ranking = *input.Ranking
	}

	if err := s.applicants.Update(ctx, applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

// Delete removes the applicant's benefit join rows, then the applicant.
func (s *ApplicantServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.applicants.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.links.DeleteByLeft(ctx, id); err != nil {
		return err
	}
	return s.applicants.Delete(ctx, id)
}

func (s *ApplicantServiceImpl) ListByName(ctx context.Context, name string) ([]*domain.Applicant, error) {
	return s.applicants.ListByName(ctx, name)
}

// ListByRUT accepts any conventional RUT format; dots and dashes are
// stripped before matching.
func (s *ApplicantServiceImpl) ListByRUT(ctx context.Context, rut string) ([]*domain.Applicant, error) {
	return s.applicants.ListByRUT(ctx, NormalizeRUT(rut))
}

// NormalizeRUT strips dots and dashes so "12.345.678-9" and "12345678-9"
// compare equal.
func NormalizeRUT(rut string) string {
	rut = strings.ReplaceAll(rut, ".", "")
	return strings.ReplaceAll(rut, "-", "")
}
