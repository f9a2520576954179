package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// ApplicationServiceImpl implements application submissions. Creating an
// application fans out one join row per requested benefit; deleting one
// cascades those rows before the application itself.
type ApplicationServiceImpl struct {
	applications ports.ApplicationRepository
	applicants   ports.ApplicantRepository
	benefits     ports.BenefitRepository
	links        ports.AssociationRepository // application-benefit join rows
	log          zerolog.Logger
}

func NewApplicationService(
	applications ports.ApplicationRepository,
	applicants ports.ApplicantRepository,
	benefits ports.BenefitRepository,
	links ports.AssociationRepository,
	log zerolog.Logger,
) *ApplicationServiceImpl {
	return &ApplicationServiceImpl{
		applications: applications,
		applicants:   applicants,
		benefits:     benefits,
		links:        links,
		log:          log,
	}
}

// Create submits an application for an applicant. The career comes from the
// applicant record. Every requested benefit name must resolve in the catalog;
// the application row and its join rows are separate writes, so a failure
// mid-fan-out leaves join rows behind the next delete will sweep up.
func (s *ApplicationServiceImpl) Create(ctx context.Context, input ports.CreateApplicationInput) (*domain.Application, error) {
	applicant, err := s.applicants.FindByID(ctx, input.ApplicantID)
	if err != nil {
		return nil, err
	}

	application := &domain.Application{
		ApplicantID: applicant.ID,
		CareerID:    applicant.CareerID,
		EntryYear:   input.EntryYear,
		Benefits:    input.Benefits,
	}

	created, err := s.applications.Create(ctx, application)
	if err != nil {
		return nil, err
	}

	for _, name := range input.Benefits {
		benefit, err := s.benefits.FindByName(ctx, name)
		if err != nil {
			s.log.Error().Err(err).Str("application_id", created.ID).Str("benefit", name).Msg("benefit fan-out failed")
			return nil, err
		}
		if err := s.links.Insert(ctx, created.ID, benefit.ID); err != nil {
			return nil, err
		}
	}

	s.log.Info().Str("application_id", created.ID).Str("applicant_id", applicant.ID).Int("benefits", len(input.Benefits)).Msg("application created")
	return created, nil
}

// Update replaces the entry year and the requested benefit names. The join
// rows are rebuilt: existing links are dropped and re-inserted from the new
// list, keeping the relation in step with the stored names.
func (s *ApplicationServiceImpl) Update(ctx context.Context, id string, input ports.UpdateApplicationInput) (*domain.Application, error) {
	application, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	application.EntryYear = input.EntryYear
	application.Benefits = input.Benefits

	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}

	if err := s.links.DeleteByLeft(ctx, id); err != nil {
		return nil, err
	}
	for _, name := range input.Benefits {
		benefit, err := s.benefits.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := s.links.Insert(ctx, id, benefit.ID); err != nil {
			return nil, err
		}
	}
	return application, nil
}

// Delete removes the application's benefit join rows, then the application.
// Both steps are idempotent, so a crashed delete converges when retried.
func (s *ApplicationServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.applications.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.links.DeleteByLeft(ctx, id); err != nil {
		return err
	}
	return s.applications.Delete(ctx, id)
}

func (s *ApplicationServiceImpl) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	if _, err := s.applicants.FindByID(ctx, applicantID); err != nil {
		return nil, err
	}
	return s.applications.ListByApplicant(ctx, applicantID)
}
