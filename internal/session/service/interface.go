// Package service provides the credential primitives used by the session use case:
// opaque token generation and hashing, and password hashing.
package service

// TokenService generates opaque session tokens and hashes them for storage.
type TokenService interface {
	// GenerateToken returns a new plain token and its SHA-256 hex hash.
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken hashes a plain token the same way GenerateToken does.
	HashToken(plainToken string) string
}

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	Hash(plainPassword string) (string, error)

	// Compare runs in constant time and returns false on any verification error.
	Compare(plainPassword string, hashedPassword string) bool
}
