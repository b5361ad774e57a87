package auth

import (
	"strings"

	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/pkg/util"
)

// Credential is an entry in the static login table. There is no real
// authentication protocol here: the service runs against a fixed
// credential map, and the session token it issues is the only artifact
// downstream code sees.
type Credential struct {
	Email        string
	Name         string
	Role         domain.Role
	PasswordHash string
}

// CredentialStore resolves login attempts against the static table.
type CredentialStore struct {
	byEmail map[string]Credential
}

// NewCredentialStore builds the store from a credential list.
func NewCredentialStore(creds []Credential) *CredentialStore {
	byEmail := make(map[string]Credential, len(creds))
	for _, c := range creds {
		byEmail[strings.ToLower(c.Email)] = c
	}
	return &CredentialStore{byEmail: byEmail}
}

// DefaultCredentials returns the demo login table with every password set
// to the given plaintext, hashed at the given cost.
func DefaultCredentials(password string, cost int) ([]Credential, error) {
	hash, err := HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	return []Credential{
		{Email: "manager@demo.com", Name: "Demo Manager", Role: domain.RoleManager, PasswordHash: hash},
		{Email: "super@demo.com", Name: "Demo Super Agent", Role: domain.RoleSuperAgent, PasswordHash: hash},
		{Email: "agent@demo.com", Name: "Demo Agent", Role: domain.RoleAgent, PasswordHash: hash},
	}, nil
}

// Authenticate checks email/password and returns the matched credential.
func (s *CredentialStore) Authenticate(email, password string) (Credential, error) {
	cred, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return Credential{}, util.NewUnauthorized("invalid credentials")
	}
	if err := ComparePassword(cred.PasswordHash, password); err != nil {
		return Credential{}, util.NewUnauthorized("invalid credentials")
	}
	return cred, nil
}
