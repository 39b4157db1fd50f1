package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wqtc-api/internal/auth"
	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/metrics"
	"wqtc-api/internal/repository"
	"wqtc-api/internal/validator"
)

// LoginResult is a freshly issued session token.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService checks credentials and resolves tokens back to users.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenManager
	validator *validator.Validator
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, v *validator.Validator) *AuthService {
	return &AuthService{users: users, tokens: tokens, validator: v}
}

// Login verifies the password and issues a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (result *LoginResult, err error) {
	defer func() { metrics.ObserveLogin(err) }()

	if err := s.validator.ValidateCredentials(&creds); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(creds.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn("Login for unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, creds.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Warn("Login with wrong password", slog.Int64("user_id", user.ID))
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	log.Info("User logged in",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate resolves a token to the current state of its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// CreateAdmin creates an admin account. An existing email yields
// domain.ErrAlreadyExists and leaves that account untouched.
func (s *AuthService) CreateAdmin(ctx context.Context, email, username, password string) (*domain.User, error) {
	creds := domain.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := s.validator.ValidateCredentials(&creds); err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, domain.User{
		Email:        creds.Email,
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Admin user created", slog.Int64("user_id", user.ID))
	return user, nil
}
