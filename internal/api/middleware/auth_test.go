package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/admision-lab/benefits-api/internal/core/domain"
	"github.com/admision-lab/benefits-api/internal/core/ports"
)

// stubIssuer accepts exactly one token string.
type stubIssuer struct {
	token  string
	claims ports.TokenClaims
}

func (s *stubIssuer) Issue(username, role string) (string, error) {
	return s.token, nil
}

func (s *stubIssuer) Verify(token string) (*ports.TokenClaims, error) {
	if token != s.token {
		return nil, domain.ErrTokenSignature
	}
	claims := s.claims
	return &claims, nil
}

func runAuth(t *testing.T, issuer ports.TokenIssuer, header string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(issuer)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	issuer := &stubIssuer{token: "tok", claims: ports.TokenClaims{Username: "ana", Role: domain.RoleApplicant}}

	rec, c, err := runAuth(t, issuer, "Bearer tok")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got, _ := c.Get("username").(string); got != "ana" {
		t.Fatalf("username claim = %q", got)
	}
	if got, _ := c.Get("role").(string); got != domain.RoleApplicant {
		t.Fatalf("role claim = %q", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	issuer := &stubIssuer{token: "tok"}

	_, _, err := runAuth(t, issuer, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	issuer := &stubIssuer{token: "tok"}

	for _, header := range []string{"tok", "Basic tok", "Bearer"} {
		_, _, err := runAuth(t, issuer, header)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_BadToken(t *testing.T) {
	issuer := &stubIssuer{token: "tok"}

	_, _, err := runAuth(t, issuer, "Bearer forged")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
