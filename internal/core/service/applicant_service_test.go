package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

type memApplicantRepo struct {
	applicants map[string]*domain.Applicant
	nextID     int
}

func newMemApplicantRepo() *memApplicantRepo {
	return &memApplicantRepo{applicants: make(map[string]*domain.Applicant)}
}

func (r *memApplicantRepo) Create(_ context.Context, a *domain.Applicant) (*domain.Applicant, error) {
	r.nextID++
	clone := *a
	clone.ID = fmt.Sprintf("app%d", r.nextID)
	r.applicants[clone.ID] = &clone
	copied := clone
	return &copied, nil
}

func (r *memApplicantRepo) FindByID(_ context.Context, id string) (*domain.Applicant, error) {
	a, ok := r.applicants[id]
	if !ok {
		return nil, domain.ErrApplicantNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *memApplicantRepo) Update(_ context.Context, a *domain.Applicant) error {
	if _, ok := r.applicants[a.ID]; !ok {
		return domain.ErrApplicantNotFound
	}
	clone := *a
	r.applicants[a.ID] = &clone
	return nil
}

func (r *memApplicantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.applicants[id]; !ok {
		return domain.ErrApplicantNotFound
	}
	delete(r.applicants, id)
	return nil
}

func (r *memApplicantRepo) ListByName(_ context.Context, name string) ([]*domain.Applicant, error) {
	var out []*domain.Applicant
	for _, a := range r.applicants {
		if name == "" || a.Name == name {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memApplicantRepo) ListByRUT(_ context.Context, rut string) ([]*domain.Applicant, error) {
	var out []*domain.Applicant
	for _, a := range r.applicants {
		if a.RUT == rut {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubCareerRepo struct {
	careers map[string]*domain.Career
}

func newStubCareerRepo(ids ...string) *stubCareerRepo {
	r := &stubCareerRepo{careers: make(map[string]*domain.Career)}
	for _, id := range ids {
		r.careers[id] = &domain.Career{ID: id, Name: "career-" + id}
	}
	return r
}

func (r *stubCareerRepo) Create(_ context.Context, c *domain.Career) (*domain.Career, error) {
	r.careers[c.ID] = c
	return c, nil
}

func (r *stubCareerRepo) FindByID(_ context.Context, id string) (*domain.Career, error) {
	c, ok := r.careers[id]
	if !ok {
		return nil, domain.ErrCareerNotFound
	}
	return c, nil
}

func (r *stubCareerRepo) Update(_ context.Context, c *domain.Career) error {
	r.careers[c.ID] = c
	return nil
}

func (r *stubCareerRepo) Delete(_ context.Context, id string) error {
	delete(r.careers, id)
	return nil
}

func (r *stubCareerRepo) List(_ context.Context) ([]*domain.Career, error) {
	out := make([]*domain.Career, 0, len(r.careers))
	for _, c := range r.careers {
		out = append(out, c)
	}
	return out, nil
}

func newApplicantFixture() (*ApplicantServiceImpl, *stubUserRepo, *memApplicantRepo, *memLinks) {
	users := newStubUserRepo()
	applicants := newMemApplicantRepo()
	careers := newStubCareerRepo("c1")
	links := &memLinks{}
	svc := NewApplicantService(applicants, users, careers, links, zerolog.Nop())
	return svc, users, applicants, links
}

func seedUser(t *testing.T, users *stubUserRepo, username string) *domain.User {
	t.Helper()
	u, err := users.Create(context.Background(), &domain.User{Username: username})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestApplicantService_Create(t *testing.T) {
	svc, users, _, _ := newApplicantFixture()
	owner := seedUser(t, users, "ana")

	applicant, err := svc.Create(context.Background(), ports.CreateApplicantInput{
		UserID:   owner.ID,
		Name:     "Ana Rojas",
		RUT:      "12.345.678-9",
		CareerID: "c1",
		NEM:      6.2,
		Ranking:  710,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if applicant.RUT != "123456789" {
		t.Fatalf("RUT not normalized, got %q", applicant.RUT)
	}
}

func TestApplicantService_Create_MissingParents(t *testing.T) {
	svc, users, _, _ := newApplicantFixture()
	owner := seedUser(t, users, "ana")

	if _, err := svc.Create(context.Background(), ports.CreateApplicantInput{
		UserID: "ghost", CareerID: "c1",
	}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.CreateApplicantInput{
		UserID: owner.ID, CareerID: "ghost",
	}); !errors.Is(err, domain.ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}

func TestApplicantService_Update_Partial(t *testing.T) {
	svc, users, _, _ := newApplicantFixture()
	owner := seedUser(t, users, "ana")

	applicant, err := svc.Create(context.Background(), ports.CreateApplicantInput{
		UserID: owner.ID, Name: "Ana", RUT: "1-9", CareerID: "c1", NEM: 5.0,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newName := "Ana Maria"
	updated, err := svc.Update(context.Background(), applicant.ID, ports.UpdateApplicantInput{Name: &newName})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Ana Maria" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.NEM != 5.0 || updated.RUT != "19" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestApplicantService_Delete_CascadesLinks(t *testing.T) {
	svc, users, applicants, links := newApplicantFixture()
	owner := seedUser(t, users, "ana")

	applicant, err := svc.Create(context.Background(), ports.CreateApplicantInput{
		UserID: owner.ID, CareerID: "c1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	links.rows = []pair{{applicant.ID, "b1"}, {applicant.ID, "b2"}, {"other", "b1"}}

	if err := svc.Delete(context.Background(), applicant.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(links.rows) != 1 || links.rows[0].left != "other" {
		t.Fatalf("expected only unrelated join rows to survive, got %+v", links.rows)
	}
	if _, err := applicants.FindByID(context.Background(), applicant.ID); !errors.Is(err, domain.ErrApplicantNotFound) {
		t.Fatalf("applicant row must be gone, got %v", err)
	}
}

func TestApplicantService_ListByRUT_NormalizesInput(t *testing.T) {
	svc, users, _, _ := newApplicantFixture()
	owner := seedUser(t, users, "ana")

	if _, err := svc.Create(context.Background(), ports.CreateApplicantInput{
		UserID: owner.ID, CareerID: "c1", RUT: "12.345.678-9",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, q := range []string{"12345678-9", "12.345.678-9", "123456789"} {
		got, err := svc.ListByRUT(context.Background(), q)
		if err != nil {
			t.Fatalf("ListByRUT(%q): %v", q, err)
		}
		if len(got) != 1 {
			t.Fatalf("ListByRUT(%q): expected 1 match, got %d", q, len(got))
		}
	}
}
