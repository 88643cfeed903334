package userservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// UserRepository is the persistence contract of the user service.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.UserRole) (domain.User, error)
}

// TokenService issues the JWTs handed out at login.
type TokenService interface {
	GenerateToken(userID string, userRole string) (string, error)
}

// Service handles authentication and admin-side account management.
// Accounts are seeded by migration or managed by admins; there is no
// self-service registration.
type Service struct {
	repo     UserRepository
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService creates the user service.
func NewService(repo UserRepository, tokenSvc TokenService, logger logger.Logger) *Service {
	return &Service{repo: repo, tokenSvc: tokenSvc, logger: logger}
}

// Login verifies the credentials and returns a signed JWT.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperror.NewUnauthorizedError("email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// A missing account answers the same as a wrong password.
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			return "", apperror.NewUnauthorizedError("invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperror.NewUnauthorizedError("invalid credentials")
	}

	tokenString, err := s.tokenSvc.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", apperror.NewInternalError("failed to generate authentication token", err)
	}

	s.logger.Info("user logged in", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return tokenString, nil
}

// ListUsers returns every account. Admin only, enforced at the router.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdateUserRole changes an account's role.
func (s *Service) UpdateUserRole(ctx context.Context, id string, role string) (domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.User{}, apperror.NewValidationError("user id must be a valid UUID")
	}
	if !domain.ValidRole(role) {
		return domain.User{}, apperror.NewValidationError("role must be either staff or admin")
	}

	user, err := s.repo.UpdateRole(ctx, id, domain.UserRole(role))
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("user role changed", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return user, nil
}
