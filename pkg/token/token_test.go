package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := New("super-secret", time.Hour)

	signed, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	ownerID, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ownerID != "user-123" {
		t.Fatalf("owner mismatch: got %q want %q", ownerID, "user-123")
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	issuer := New("secret", time.Hour)

	// New clamps non-positive TTLs, so build an issuer with a negative ttl
	// directly to sign an already-expired token with the same secret.
	expired := &Issuer{secret: []byte("secret"), ttl: -time.Minute}
	signed, err := expired.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := issuer.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := New("right-secret", time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := New("wrong-secret", time.Hour).Verify(signed); !errors.Is(err, ErrSignature) {
		t.Fatalf("expected ErrSignature, got %v", err)
	}
}

func TestVerifyTampered(t *testing.T) {
	t.Parallel()

	issuer := New("secret", time.Hour)
	signed, err := issuer.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", signed)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := issuer.Verify(tampered); err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	issuer := New("secret", time.Hour)
	if _, err := issuer.Verify("not.a.jwt"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := issuer.Verify(""); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for empty token, got %v", err)
	}
}
