package auth

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2!" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "hunter2!") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "hunter3!") {
		t.Error("wrong password accepted")
	}
}

func TestPasswordHashIsSalted(t *testing.T) {
	h1, _ := HashPassword("same-password")
	h2, _ := HashPassword("same-password")
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}
}
