package auth

import (
	"errors"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	const password = "longenough1"

	hash, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == password {
		t.Fatalf("hash must not equal the plaintext")
	}
	if err := VerifyPassword(hash, password); err != nil {
		t.Fatalf("expected verification to succeed: %v", err)
	}
	if err := VerifyPassword(hash, "wrong-password"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for wrong password, got %v", err)
	}
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	const password = "repeatable-secret"

	first, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if err := VerifyPassword(first, password); err != nil {
		t.Fatalf("first hash failed verification: %v", err)
	}
	if err := VerifyPassword(second, password); err != nil {
		t.Fatalf("second hash failed verification: %v", err)
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("", 4); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$junk"} {
		if err := VerifyPassword(hash, "anything"); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("hash %q: expected ErrUnauthenticated, got %v", hash, err)
		}
	}
}

func TestHashPasswordCostFallback(t *testing.T) {
	hash, err := HashPassword("some-password", 99)
	if err != nil {
		t.Fatalf("HashPassword with out-of-range cost: %v", err)
	}
	if err := VerifyPassword(hash, "some-password"); err != nil {
		t.Fatalf("verification failed: %v", err)
	}
}
