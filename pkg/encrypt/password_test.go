package encrypt

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("Senha123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Senha123" {
		t.Fatal("hash must not equal the plain password")
	}
	if !VerifyPassword(hash, "Senha123") {
		t.Fatal("expected password to verify")
	}
	if VerifyPassword(hash, "senha123") {
		t.Fatal("wrong password verified")
	}
}
