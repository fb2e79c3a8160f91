package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/config"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

type authService struct {
	repo store.UserRepository
	cfg  config.App

	logger *logger.Logger
}

func NewAuthService(repo store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{repo: repo, cfg: cfg, logger: logger}
}

// RegisterUser implements [AuthService].
func (s *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if user.Login == "" || user.Password == "" {
		return models.User{}, fmt.Errorf("%w: login and password are required", ErrValidation)
	}

	user.PasswordHash = utils.HashPassword(user.Password, s.cfg.PasswordHashKey)
	user.Password = ""
	user.CreatedAt = models.Now()

	created, err := s.repo.Create(ctx, &user)
	if err != nil {
		return models.User{}, err
	}
	s.logger.Info().Str("func", "authService.RegisterUser").Str("login", created.Login).Msg("user registered")

	return *created, nil
}

// Login implements [AuthService].
func (s *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	found, err := s.repo.GetByLogin(ctx, user.Login)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("login lookup: %w", err)
	}

	hash := utils.HashPassword(user.Password, s.cfg.PasswordHashKey)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(found.PasswordHash)) != 1 {
		return models.User{}, ErrInvalidCredentials
	}

	found.Password = ""
	return *found, nil
}

// CreateToken implements [AuthService].
func (s *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.UserID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		s.logger.Err(err).Str("func", "authService.CreateToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("create token: %w", err)
	}
	return token, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}
	return token, nil
}
