package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/admision-lab/benefits-api/internal/api/metrics"
	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// ParentCheck reports whether the owning parent of an association exists,
// returning the parent's not-found sentinel otherwise.
type ParentCheck func(ctx context.Context, id string) error

// AssociationService manages one many-to-many relation between a parent
// entity and benefits. The store keeps no uniqueness constraint and no
// foreign-key cascade: duplicate pairs are permitted, and cascades run here,
// in application code, before a parent is deleted.
//
// Instantiated twice: applicant-benefit and application-benefit.
type AssociationService struct {
	relation string // metric label, e.g. "applicant_benefit"
	links    ports.AssociationRepository
	benefits ports.BenefitRepository
	parentOK ParentCheck
	log      zerolog.Logger
}

func NewAssociationService(
	relation string,
	links ports.AssociationRepository,
	benefits ports.BenefitRepository,
	parentOK ParentCheck,
	log zerolog.Logger,
) *AssociationService {
	return &AssociationService{
		relation: relation,
		links:    links,
		benefits: benefits,
		parentOK: parentOK,
		log:      log,
	}
}

// Link validates both parents and inserts a join row. It does not check for
// an existing identical pair; callers that link twice get two rows.
func (s *AssociationService) Link(ctx context.Context, parentID, benefitID string) error {
	if err := s.parentOK(ctx, parentID); err != nil {
		return err
	}
	if _, err := s.benefits.FindByID(ctx, benefitID); err != nil {
		return err
	}
	if err := s.links.Insert(ctx, parentID, benefitID); err != nil {
		return err
	}
	metrics.AssociationsLinkedTotal.WithLabelValues(s.relation).Inc()
	return nil
}

// Unlink removes one join row matching the exact pair. Removing a pair that
// was never linked is a no-op, not an error.
func (s *AssociationService) Unlink(ctx context.Context, parentID, benefitID string) error {
	if err := s.parentOK(ctx, parentID); err != nil {
		return err
	}
	if _, err := s.benefits.FindByID(ctx, benefitID); err != nil {
		return err
	}
	if err := s.links.DeleteOnePair(ctx, parentID, benefitID); err != nil {
		return err
	}
	metrics.AssociationsUnlinkedTotal.WithLabelValues(s.relation).Inc()
	return nil
}

// UnlinkAllForParent drops every join row owned by the parent. The owning
// service calls this before deleting the parent record itself.
func (s *AssociationService) UnlinkAllForParent(ctx context.Context, parentID string) error {
	if err := s.links.DeleteByLeft(ctx, parentID); err != nil {
		return err
	}
	metrics.CascadeDeletesTotal.WithLabelValues(s.relation).Inc()
	return nil
}

// UnlinkAllForBenefit drops every join row referencing the benefit.
func (s *AssociationService) UnlinkAllForBenefit(ctx context.Context, benefitID string) error {
	if err := s.links.DeleteByRight(ctx, benefitID); err != nil {
		return err
	}
	metrics.CascadeDeletesTotal.WithLabelValues(s.relation).Inc()
	return nil
}

// ListBenefits materializes the benefit partners of a parent with one
// explicit fetch per join row. Rows whose benefit has since been deleted are
// skipped: orphaned links are a recoverable inconsistency, not a failure.
func (s *AssociationService) ListBenefits(ctx context.Context, parentID string) ([]*domain.Benefit, error) {
	if err := s.parentOK(ctx, parentID); err != nil {
		return nil, err
	}

	ids, err := s.links.ListRightIDs(ctx, parentID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Benefit, 0, len(ids))
	for _, id := range ids {
		b, err := s.benefits.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrBenefitNotFound) {
				s.log.Warn().Str("relation", s.relation).Str("benefit_id", id).Msg("orphaned join row")
				continue
			}
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}
