package auth_test

import (
	"testing"

	"studysite/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := auth.MakeToken("Alice", "test-secret")
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	claims, err := auth.ParseToken(tok, "test-secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "Alice" {
		t.Errorf("username: got %q", claims.Username)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tok, err := auth.MakeToken("alice", "test-secret")
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	if _, err := auth.ParseToken(tok, "other-secret"); err == nil {
		t.Fatal("expected error")
	}
}

func TestTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c", `{"username":"alice"}`} {
		if _, err := auth.ParseToken(raw, "test-secret"); err == nil {
			t.Errorf("raw %q: expected error", raw)
		}
	}
}
