package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/fraservotes/console/internal/errors"
)

type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

func (s *passwordService) Hash(plainPassword string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

func (s *passwordService) Compare(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates an Argon2id PasswordService with the moderate policy.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		panic(err)
	}

	return &passwordService{hasher: hasher}
}
