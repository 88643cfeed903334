package userservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
	"texstock/internal/service/userservice"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role domain.UserRole) (domain.User, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID string, userRole string) (string, error) {
	args := m.Called(userID, userRole)
	return args.String(0), args.Error(1)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokens := new(MockTokenService)
	svc := userservice.NewService(mockRepo, mockTokens, logger.NewLogger("error"))

	user := domain.User{
		ID:           uuid.New().String(),
		Email:        "staff@texstock.local",
		PasswordHash: hashPassword(t, "secret"),
		Role:         domain.RoleStaff,
	}
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	mockTokens.On("GenerateToken", user.ID, "staff").Return("signed.jwt.token", nil)

	token, err := svc.Login(context.Background(), user.Email, "secret")

	assert.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	mockTokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokens := new(MockTokenService)
	svc := userservice.NewService(mockRepo, mockTokens, logger.NewLogger("error"))

	user := domain.User{
		ID:           uuid.New().String(),
		Email:        "staff@texstock.local",
		PasswordHash: hashPassword(t, "secret"),
		Role:         domain.RoleStaff,
	}
	mockRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), user.Email, "wrong")

	var unauthorized *apperror.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorized)
	mockTokens.AssertNotCalled(t, "GenerateToken")
}

// An unknown account and a wrong password must be indistinguishable.
func TestLogin_UnknownAccountAnswersLikeWrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokens := new(MockTokenService)
	svc := userservice.NewService(mockRepo, mockTokens, logger.NewLogger("error"))

	mockRepo.On("FindByEmail", mock.Anything, "ghost@texstock.local").
		Return(domain.User{}, apperror.NewNotFoundError("no user with email ghost@texstock.local"))

	_, err := svc.Login(context.Background(), "ghost@texstock.local", "whatever")

	var unauthorized *apperror.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_EmptyCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, new(MockTokenService), logger.NewLogger("error"))

	_, err := svc.Login(context.Background(), "", "")

	var unauthorized *apperror.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorized)
	mockRepo.AssertNotCalled(t, "FindByEmail")
}

func TestUpdateUserRole_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, new(MockTokenService), logger.NewLogger("error"))

	id := uuid.New().String()
	updated := domain.User{ID: id, Role: domain.RoleAdmin}
	mockRepo.On("UpdateRole", mock.Anything, id, domain.RoleAdmin).Return(updated, nil)

	user, err := svc.UpdateUserRole(context.Background(), id, "admin")

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUserRole_RejectsMalformedID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, new(MockTokenService), logger.NewLogger("error"))

	_, err := svc.UpdateUserRole(context.Background(), "not-a-uuid", "admin")

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "UpdateRole")
}

func TestUpdateUserRole_RejectsUnknownRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, new(MockTokenService), logger.NewLogger("error"))

	_, err := svc.UpdateUserRole(context.Background(), uuid.New().String(), "superuser")

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "UpdateRole")
}
