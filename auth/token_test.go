package auth

import "testing"

func TestGenerateRefreshToken(t *testing.T) {
	first, err := generateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 64 {
		t.Fatalf("token length = %d, want 64 hex chars", len(first))
	}

	second, err := generateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("consecutive refresh tokens must differ")
	}
}

func TestHashToken(t *testing.T) {
	if hashToken("abc") != hashToken("abc") {
		t.Fatal("hash must be deterministic")
	}
	if hashToken("abc") == hashToken("abd") {
		t.Fatal("different tokens must hash differently")
	}
	if hashToken("abc") == "abc" {
		t.Fatal("stored value must not be the raw token")
	}
	if len(hashToken("abc")) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(hashToken("abc")))
	}
}
