package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

type pair struct {
	left, right string
}

// memLinks is an in-memory association store with the same contract as the
// Mongo one: duplicates allowed, DeleteOnePair removes a single row.
type memLinks struct {
	rows []pair
}

func (m *memLinks) Insert(_ context.Context, leftID, rightID string) error {
	m.rows = append(m.rows, pair{leftID, rightID})
	return nil
}

func (m *memLinks) DeleteOnePair(_ context.Context, leftID, rightID string) error {
	for i, p := range m.rows {
		if p.left == leftID && p.right == rightID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memLinks) DeleteByLeft(_ context.Context, leftID string) error {
	kept := m.rows[:0]
	for _, p := range m.rows {
		if p.left != leftID {
			kept = append(kept, p)
		}
	}
	m.rows = kept
	return nil
}

func (m *memLinks) DeleteByRight(_ context.Context, rightID string) error {
	kept := m.rows[:0]
	for _, p := range m.rows {
		if p.right != rightID {
			kept = append(kept, p)
		}
	}
	m.rows = kept
	return nil
}

func (m *memLinks) ListRightIDs(_ context.Context, leftID string) ([]string, error) {
	var ids []string
	for _, p := range m.rows {
		if p.left == leftID {
			ids = append(ids, p.right)
		}
	}
	return ids, nil
}

type stubBenefitRepo struct {
	benefits map[string]*domain.Benefit
}

func newStubBenefitRepo(ids ...string) *stubBenefitRepo {
	r := &stubBenefitRepo{benefits: make(map[string]*domain.Benefit)}
	for i, id := range ids {
		r.benefits[id] = &domain.Benefit{ID: id, Name: fmt.Sprintf("benefit-%s", id), Code: int64(i + 1)}
	}
	return r
}

func (r *stubBenefitRepo) Create(_ context.Context, b *domain.Benefit) (*domain.Benefit, error) {
	r.benefits[b.ID] = b
	return b, nil
}

func (r *stubBenefitRepo) FindByID(_ context.Context, id string) (*domain.Benefit, error) {
	b, ok := r.benefits[id]
	if !ok {
		return nil, domain.ErrBenefitNotFound
	}
	return b, nil
}

func (r *stubBenefitRepo) FindByName(_ context.Context, name string) (*domain.Benefit, error) {
	for _, b := range r.benefits {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, domain.ErrBenefitNotFound
}

func (r *stubBenefitRepo) Update(_ context.Context, b *domain.Benefit) error {
	r.benefits[b.ID] = b
	return nil
}

func (r *stubBenefitRepo) Delete(_ context.Context, id string) error {
	delete(r.benefits, id)
	return nil
}

func (r *stubBenefitRepo) List(_ context.Context) ([]*domain.Benefit, error) {
	out := make([]*domain.Benefit, 0, len(r.benefits))
	for _, b := range r.benefits {
		out = append(out, b)
	}
	return out, nil
}

func applicantCheck(known ...string) ParentCheck {
	set := make(map[string]struct{}, len(known))
	for _, id := range known {
		set[id] = struct{}{}
	}
	return func(_ context.Context, id string) error {
		if _, ok := set[id]; !ok {
			return domain.ErrApplicantNotFound
		}
		return nil
	}
}

func newAssociationFixture(parents []string, benefitIDs ...string) (*AssociationService, *memLinks, *stubBenefitRepo) {
	links := &memLinks{}
	benefits := newStubBenefitRepo(benefitIDs...)
	svc := NewAssociationService("applicant_benefit", links, benefits, applicantCheck(parents...), zerolog.Nop())
	return svc, links, benefits
}

func TestAssociationService_LinkAndList(t *testing.T) {
	svc, _, _ := newAssociationFixture([]string{"7"}, "3")

	if err := svc.Link(context.Background(), "7", "3"); err != nil {
		t.Fatalf("Link returned error: %v", err)
	}

	got, err := svc.ListBenefits(context.Background(), "7")
	if err != nil {
		t.Fatalf("ListBenefits returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("unexpected benefits: %+v", got)
	}
}

func TestAssociationService_DuplicatePairsPermitted(t *testing.T) {
	svc, links, _ := newAssociationFixture([]string{"7"}, "3")

	if err := svc.Link(context.Background(), "7", "3"); err != nil {
		t.Fatalf("first Link: %v", err)
	}
	if err := svc.Link(context.Background(), "7", "3"); err != nil {
		t.Fatalf("second Link: %v", err)
	}
	if len(links.rows) != 2 {
		t.Fatalf("expected 2 join rows, got %d", len(links.rows))
	}

	// One Unlink removes exactly one of the duplicates.
	if err := svc.Unlink(context.Background(), "7", "3"); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if len(links.rows) != 1 {
		t.Fatalf("expected 1 join row to remain, got %d", len(links.rows))
	}
}

func TestAssociationService_UnlinkMissingPairIsNoop(t *testing.T) {
	svc, _, _ := newAssociationFixture([]string{"7"}, "3")

	if err := svc.Unlink(context.Background(), "7", "3"); err != nil {
		t.Fatalf("Unlink of absent pair must be a no-op, got %v", err)
	}
}

func TestAssociationService_UnlinkRoundTrip(t *testing.T) {
	svc, _, _ := newAssociationFixture([]string{"7"}, "3")

	if err := svc.Link(context.Background(), "7", "3"); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := svc.Unlink(context.Background(), "7", "3"); err != nil {
		t.Fatalf("Unlink: %v", err)
	}

	got, err := svc.ListBenefits(context.Background(), "7")
	if err != nil {
		t.Fatalf("ListBenefits: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no benefits after unlink, got %+v", got)
	}
}

func TestAssociationService_CascadeForParent(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		svc, _, _ := newAssociationFixture([]string{"7"}, "1", "2", "3", "4", "5")

		for i := 0; i < n; i++ {
			if err := svc.Link(context.Background(), "7", fmt.Sprintf("%d", i+1)); err != nil {
				t.Fatalf("Link %d: %v", i, err)
			}
		}

		if err := svc.UnlinkAllForParent(context.Background(), "7"); err != nil {
			t.Fatalf("UnlinkAllForParent with %d links: %v", n, err)
		}

		got, err := svc.ListBenefits(context.Background(), "7")
		if err != nil {
			t.Fatalf("ListBenefits: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("after cascade of %d links, expected empty list, got %d", n, len(got))
		}
	}
}

func TestAssociationService_CascadeForBenefit(t *testing.T) {
	svc, links, _ := newAssociationFixture([]string{"7", "8"}, "3")

	_ = svc.Link(context.Background(), "7", "3")
	_ = svc.Link(context.Background(), "8", "3")

	if err := svc.UnlinkAllForBenefit(context.Background(), "3"); err != nil {
		t.Fatalf("UnlinkAllForBenefit: %v", err)
	}
	if len(links.rows) != 0 {
		t.Fatalf("expected no join rows, got %d", len(links.rows))
	}
}

func TestAssociationService_ParentMissing(t *testing.T) {
	svc, _, _ := newAssociationFixture(nil, "3")

	if err := svc.Link(context.Background(), "7", "3"); !errors.Is(err, domain.ErrApplicantNotFound) {
		t.Fatalf("expected ErrApplicantNotFound, got %v", err)
	}
	if _, err := svc.ListBenefits(context.Background(), "7"); !errors.Is(err, domain.ErrApplicantNotFound) {
		t.Fatalf("expected ErrApplicantNotFound, got %v", err)
	}
}

func TestAssociationService_BenefitMissing(t *testing.T) {
	svc, _, _ := newAssociationFixture([]string{"7"})

	if err := svc.Link(context.Background(), "7", "3"); !errors.Is(err, domain.ErrBenefitNotFound) {
		t.Fatalf("expected ErrBenefitNotFound, got %v", err)
	}
}

func TestAssociationService_ListSkipsOrphanedRows(t *testing.T) {
	svc, _, benefits := newAssociationFixture([]string{"7"}, "3", "4")

	_ = svc.Link(context.Background(), "7", "3")
	_ = svc.Link(context.Background(), "7", "4")

	// Simulate a crash between join-row cleanup and benefit deletion.
	if err := benefits.Delete(context.Background(), "4"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := svc.ListBenefits(context.Background(), "7")
	if err != nil {
		t.Fatalf("ListBenefits: %v", err)
	}
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected orphaned row to be skipped, got %+v", got)
	}
}
