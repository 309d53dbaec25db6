package security

import (
	"testing"
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
)

func TestJWTRoundTrip(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	userID := common.NewUUID()

	token, expiresAt, err := provider.Generate(userID, "freelancer", time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatal("expected expiry in the future")
	}

	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != string(userID) {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != "freelancer" {
		t.Fatalf("expected role freelancer, got %s", claims.Role)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, _, err := NewJWTProvider("secret-a").Generate(common.NewUUID(), "client", time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := NewJWTProvider("secret-b").Parse(token); err == nil {
		t.Fatal("expected signature mismatch")
	}
}

func TestJWTExpired(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	token, _, err := provider.Generate(common.NewUUID(), "client", -time.Minute)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := provider.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestJWTMalformed(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	for _, token := range []string{"", "a.b", "a.b.c.d", "not-a-token"} {
		if _, err := provider.Parse(token); err == nil {
			t.Fatalf("expected %q to be rejected", token)
		}
	}
}

func TestJWTSubFallback(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	userID := common.NewUUID()
	token, _, err := provider.Generate(userID, "client", time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if claims.Sub != string(userID) {
		t.Fatalf("expected sub to carry the user id, got %s", claims.Sub)
	}
}
