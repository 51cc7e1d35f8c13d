package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTIssuerRoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Minute)

	token, exp, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry %v not in the future", exp)
	}

	subject, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %s", subject)
	}
}

func TestJWTIssuerRejectsTampering(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Minute)

	token, _, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := issuer.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered token accepted: %v", err)
	}

	other := NewJWTIssuer("other-secret", time.Minute)
	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("token signed with another secret accepted: %v", err)
	}
}

func TestJWTIssuerRejectsExpired(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", -time.Minute)

	token, _, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token accepted: %v", err)
	}
}
