package auth

import (
	"testing"

	"github.com/spec-kit/estate-crm/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("agent@demo.com", "Demo Agent", domain.RoleAgent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresAt.IsZero() {
		t.Fatal("expected expiry")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "agent@demo.com" {
		t.Errorf("subject = %q", claims.Subject)
	}
	if claims.Name != "Demo Agent" || claims.Role != domain.RoleAgent {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 60).GenerateToken("x@y.test", "X", domain.RoleManager)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := NewTokenManager("secret-b", 60).ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestCredentialStoreAuthenticate(t *testing.T) {
	creds, err := DefaultCredentials("password123", 4)
	if err != nil {
		t.Fatalf("DefaultCredentials: %v", err)
	}
	store := NewCredentialStore(creds)

	cred, err := store.Authenticate("Manager@Demo.com", "password123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if cred.Role != domain.RoleManager {
		t.Errorf("role = %q, want manager", cred.Role)
	}

	if _, err := store.Authenticate("manager@demo.com", "wrong"); err == nil {
		t.Fatal("wrong password must be rejected")
	}
	if _, err := store.Authenticate("nobody@demo.com", "password123"); err == nil {
		t.Fatal("unknown email must be rejected")
	}
}
