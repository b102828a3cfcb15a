package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "correct-horse" {
		t.Fatal("hash equals the plaintext password")
	}
	if !CheckPassword(hash, "correct-horse") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	b, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}
