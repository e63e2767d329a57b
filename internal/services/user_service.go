package services

import (
	"context"
	"strings"

	"invoice-backend/internal/apperr"
	"invoice-backend/internal/auth"
	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
)

type UserService struct {
	Repo *repositories.UserRepository
	JWT  *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwt *auth.JWTManager) *UserService {
	return &UserService{Repo: repo, JWT: jwt}
}

// Signup registers a new owner account and returns a session token.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" {
		return nil, apperr.Validation("name and email are required")
	}
	if len(req.Password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, mapRepoError(err, "email already registered")
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and returns a session token. Wrong email and
// wrong password read identically.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, apperr.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, apperr.ErrUnauthorized
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
