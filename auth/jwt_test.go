package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken(42, testSecret)
	if err != nil {
		t.Fatalf("MakeToken: %v", err)
	}

	claims, err := ParseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("uid: got %d, want 42", claims.UserID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tok, _ := MakeToken(1, testSecret)
	if _, err := ParseToken(tok, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(raw, testSecret); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

// signAt builds a token whose expiry is offset from now, to probe the
// 24-hour boundary without waiting for it.
func signAt(t *testing.T, uid int64, offset time.Duration) string {
	t.Helper()
	c := Claims{
		UserID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(offset)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(offset - TokenTTL)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func TestTokenExpiryBoundary(t *testing.T) {
	// still inside its window
	if _, err := ParseToken(signAt(t, 7, time.Minute), testSecret); err != nil {
		t.Errorf("token inside window rejected: %v", err)
	}
	// one second past expiry
	if _, err := ParseToken(signAt(t, 7, -time.Second), testSecret); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTokenRejectsNonHMAC(t *testing.T) {
	// alg=none style token must not pass
	c := Claims{UserID: 9, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := ParseToken(raw, testSecret); err == nil {
		t.Fatal("unsigned token accepted")
	}
}
