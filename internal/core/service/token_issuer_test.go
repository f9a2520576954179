package service

import (
	"errors"
	"testing"
	"time"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("k1", time.Hour)

	token, err := issuer.Issue("ana", domain.RoleApplicant)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Username != "ana" {
		t.Fatalf("username = %q, want ana", claims.Username)
	}
	if claims.Role != domain.RoleApplicant {
		t.Fatalf("role = %q, want %s", claims.Role, domain.RoleApplicant)
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	token, err := NewTokenIssuer("k1", time.Hour).Issue("ana", domain.RoleApplicant)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenIssuer("k2", time.Hour).Verify(token); !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("k1", time.Millisecond)

	token, err := issuer.Issue("ana", domain.RoleApplicant)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("k1", time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	// A non-positive TTL falls back to 24h rather than minting dead tokens.
	issuer := NewTokenIssuer("k1", 0)

	token, err := issuer.Issue("ana", domain.RoleApplicant)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
}
