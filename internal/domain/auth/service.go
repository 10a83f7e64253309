package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/tx"
	"patrimonio/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	MaxLoginAttempts  int
	LockDuration      time.Duration
	PasswordMinLength int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxLoginAttempts:  5,
		LockDuration:      15 * time.Minute,
		PasswordMinLength: 8,
	}
}

// LoginResult carries the issued token and its owner.
type LoginResult struct {
	User        *User     `json:"user"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Service provides authentication logic.
type Service struct {
	userRepo   UserRepository
	txManager  tx.Manager
	jwtService *JWTService
	config     ServiceConfig
}

// NewService creates a new auth service.
func NewService(userRepo UserRepository, txManager tx.Manager, jwtService *JWTService, config ServiceConfig) *Service {
	return &Service{
		userRepo:   userRepo,
		txManager:  txManager,
		jwtService: jwtService,
		config:     config,
	}
}

// Login verifies credentials and issues an access token. Failed attempts are
// counted and lock the account after the configured threshold.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperror.NewValidation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			// Same response as a wrong password, no account probing.
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		user.RecordFailedLogin(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Update(ctx, user); err != nil {
			logger.Error(ctx, "record failed login", "error", err, "user_id", user.ID)
		}
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	user.RecordSuccessfulLogin()
	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error(ctx, "record successful login", "error", err, "user_id", user.ID)
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID, "rol", user.Role)
	return &LoginResult{User: user, AccessToken: token, ExpiresAt: expiresAt}, nil
}

// Register creates a new user with a hashed password.
func (s *Service) Register(ctx context.Context, email, password, role string, projectCode *string) (*User, error) {
	if len(password) < s.config.PasswordMinLength {
		return nil, apperror.NewValidation("password too short").
			WithDetail("min_length", s.config.PasswordMinLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	user := NewUser(email, string(hash), role)
	user.ProjectCode = projectCode
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered", "user_id", user.ID, "rol", user.Role)
	return user, nil
}
