package sampledirectory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
	"texstock/internal/service/sampledirectory"
)

type MockSampleRepository struct {
	mock.Mock
}

func (m *MockSampleRepository) ResolveOrCreate(ctx context.Context, articleID, displayName string) (domain.Sample, error) {
	args := m.Called(ctx, articleID, displayName)
	return args.Get(0).(domain.Sample), args.Error(1)
}

func (m *MockSampleRepository) FindByArticleID(ctx context.Context, articleID string) (domain.Sample, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).(domain.Sample), args.Error(1)
}

func TestResolveOrCreate_ReturnsCanonicalSample(t *testing.T) {
	mockRepo := new(MockSampleRepository)
	svc := sampledirectory.NewService(mockRepo, logger.NewLogger("error"))

	articleID := uuid.New().String()
	sample := domain.Sample{ID: uuid.New().String(), ArticleID: articleID, DisplayName: "Blue denim"}
	mockRepo.On("ResolveOrCreate", mock.Anything, articleID, "Blue denim").Return(sample, nil)

	got, err := svc.ResolveOrCreate(context.Background(), articleID, "Blue denim")

	assert.NoError(t, err)
	assert.Equal(t, sample.ID, got.ID)
	mockRepo.AssertExpectations(t)
}

func TestResolveOrCreate_RequiresArticleID(t *testing.T) {
	mockRepo := new(MockSampleRepository)
	svc := sampledirectory.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.ResolveOrCreate(context.Background(), "", "Blue denim")

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "ResolveOrCreate")
}
