package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a demo-credential password at the given bcrypt cost.
// The static login table stores only hashes, never plaintext.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a login attempt against a stored credential hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
