package utils

import "testing"

// Tests use bcrypt's minimum cost to keep them fast; production uses 12.

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abcdefg1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Abcdefg1" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !VerifyPassword(hash, "Abcdefg1") {
		t.Fatalf("VerifyPassword rejected the correct password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abcdefg1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword(hash, "abcdefg1") {
		t.Fatalf("VerifyPassword accepted a wrong password")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("Abcdefg1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("Abcdefg1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (per-call salt)")
	}
}
