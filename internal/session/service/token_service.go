package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	apperrors "github.com/fraservotes/console/internal/errors"
)

type tokenService struct{}

// GenerateToken creates 32 random bytes, base64url-encodes them as the plain
// token and returns it with its SHA-256 hash.
func (t *tokenService) GenerateToken() (plainToken string, tokenHash string, err error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	plainToken = base64.RawURLEncoding.EncodeToString(randomBytes)
	return plainToken, t.HashToken(plainToken), nil
}

func (t *tokenService) HashToken(plainToken string) string {
	hash := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(hash[:])
}

// NewTokenService creates a TokenService backed by SHA-256.
func NewTokenService() TokenService {
	return &tokenService{}
}
