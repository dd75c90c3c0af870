package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"flightbooking/internal/account"
	"flightbooking/internal/apperr"
	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/logger"
)

// RegisterRequest carries the credentials and profile for a new user.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by both register and login.
type TokenResponse struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	User        *model.User `json:"user"`
}

// Service issues and validates access tokens. User records themselves are
// managed through the account service so uniqueness rules live in one place.
type Service struct {
	store    store.Store
	accounts *account.Service
	secret   string
	tokenTTL time.Duration
	logger   logger.Client
}

func NewService(s store.Store, accounts *account.Service, secret string, tokenTTL time.Duration, log logger.Client) *Service {
	return &Service{
		store:    s,
		accounts: accounts,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   log,
	}
}

// Register creates a user with a bcrypt-hashed password and returns a signed
// token for the fresh account. New users always get the USER role; admins are
// provisioned out of band.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      model.RoleUser,
	}
	if err := s.accounts.AddUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", logger.Field{Key: "user_id", Value: user.UserID})
	return s.issue(user)
}

// Login verifies the credentials and returns a signed token. Unknown emails
// and wrong passwords produce the same error so the endpoint does not leak
// which accounts exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Validation("invalid email or password")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Validation("invalid email or password")
	}

	s.logger.Info("user logged in", logger.Field{Key: "user_id", Value: user.UserID})
	return s.issue(user)
}

// Validate parses a bearer token string into its claims.
func (s *Service) Validate(raw string) (*Claims, error) {
	return ParseAccessToken(s.secret, raw)
}

func (s *Service) issue(user *model.User) (*TokenResponse, error) {
	token, exp, err := NewAccessToken(s.secret, user, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		User:        user,
	}, nil
}
