package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/config"
	"github.com/fraservotes/console/internal/database"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
	sessionService "github.com/fraservotes/console/internal/session/service"
)

type sessionUseCase struct {
	config          *config.Config
	txManager       database.TxManager
	userRepo        UserRepository
	tokenRepo       TokenRepository
	passwordService sessionService.PasswordService
	tokenService    sessionService.TokenService

	dummyOnce sync.Once
	dummyHash string
}

// dummyPassword is hashed once and verified against for unknown emails, so a
// failed login costs one argon2id comparison whether or not the account exists.
const dummyPassword = "fraservotes-unknown-account"

func (s *sessionUseCase) compareDummy(plainPassword string) {
	s.dummyOnce.Do(func() {
		if hash, err := s.passwordService.Hash(dummyPassword); err == nil {
			s.dummyHash = hash
		}
	})
	if s.dummyHash != "" {
		_ = s.passwordService.Compare(plainPassword, s.dummyHash)
	}
}

func (s *sessionUseCase) Login(
	ctx context.Context,
	input *sessionDomain.LoginInput,
) (*sessionDomain.LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, sessionDomain.ErrUserNotFound) {
			s.compareDummy(input.Password)
			return nil, sessionDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordService.Compare(input.Password, user.PasswordHash) {
		return nil, sessionDomain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, sessionDomain.ErrUserInactive
	}

	plainToken, tokenHash, err := s.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	token := &sessionDomain.SessionToken{
		ID:        uuid.Must(uuid.NewV7()),
		TokenHash: tokenHash,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.config.SessionTokenExpiration),
		CreatedAt: now,
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.tokenRepo.Create(ctx, token); err != nil {
			return err
		}
		return s.userRepo.UpdateLastLogin(ctx, user.ID, now)
	})
	if err != nil {
		return nil, err
	}

	return &sessionDomain.LoginOutput{
		PlainToken: plainToken,
		ExpiresAt:  token.ExpiresAt,
		Session:    sessionDomain.NewSession(user, token.ID),
	}, nil
}

func (s *sessionUseCase) Authenticate(ctx context.Context, tokenHash string) (sessionDomain.Session, error) {
	token, err := s.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, sessionDomain.ErrTokenNotFound) {
			return sessionDomain.Anonymous(), sessionDomain.ErrInvalidCredentials
		}
		return sessionDomain.Anonymous(), err
	}

	if !token.Usable(time.Now().UTC()) {
		return sessionDomain.Anonymous(), sessionDomain.ErrInvalidCredentials
	}

	user, err := s.userRepo.Get(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, sessionDomain.ErrUserNotFound) {
			return sessionDomain.Anonymous(), sessionDomain.ErrInvalidCredentials
		}
		return sessionDomain.Anonymous(), err
	}

	if !user.IsActive {
		return sessionDomain.Anonymous(), sessionDomain.ErrUserInactive
	}

	return sessionDomain.NewSession(user, token.ID), nil
}

func (s *sessionUseCase) Logout(ctx context.Context, tokenHash string) error {
	token, err := s.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, sessionDomain.ErrTokenNotFound) {
			return nil
		}
		return err
	}

	if token.RevokedAt != nil {
		return nil
	}

	return s.tokenRepo.Revoke(ctx, token.ID, time.Now().UTC())
}

func (s *sessionUseCase) CreateUser(
	ctx context.Context,
	input *sessionDomain.CreateUserInput,
) (*sessionDomain.User, error) {
	if input.Role.Rank() == 0 {
		return nil, sessionDomain.ErrInvalidRole
	}

	email := normalizeEmail(input.Email)

	_, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, sessionDomain.ErrUserAlreadyExists
	case !errors.Is(err, sessionDomain.ErrUserNotFound):
		return nil, err
	}

	passwordHash, err := s.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &sessionDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		AvatarURL:    strings.TrimSpace(input.AvatarURL),
		PasswordHash: passwordHash,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewSessionUseCase creates the session use case.
func NewSessionUseCase(
	config *config.Config,
	txManager database.TxManager,
	userRepo UserRepository,
	tokenRepo TokenRepository,
	passwordService sessionService.PasswordService,
	tokenService sessionService.TokenService,
) SessionUseCase {
	return &sessionUseCase{
		config:          config,
		txManager:       txManager,
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}
