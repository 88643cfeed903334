package articleservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
	"texstock/internal/service/articleservice"
)

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Save(ctx context.Context, article domain.Article) (domain.Article, error) {
	args := m.Called(ctx, article)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByCode(ctx context.Context, code string) (domain.Article, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *MockArticleRepository) FindAll(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *MockArticleRepository) DeleteByCode(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func TestCreateArticle_DerivesQRPayload(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	svc := articleservice.NewService(mockRepo, logger.NewLogger("error"))

	expected := domain.Article{
		Code:      "TX100",
		Label:     "Blue denim",
		QRPayload: "Blue denim-TX100",
	}
	saved := expected
	saved.ID = uuid.New().String()
	mockRepo.On("Save", mock.Anything, expected).Return(saved, nil)

	created, err := svc.CreateArticle(context.Background(), domain.ArticleCreation{Code: "TX100", Label: "Blue denim"})

	assert.NoError(t, err)
	assert.Equal(t, "Blue denim-TX100", created.QRPayload)
	mockRepo.AssertExpectations(t)
}

func TestCreateArticle_TrimsWhitespace(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	svc := articleservice.NewService(mockRepo, logger.NewLogger("error"))

	expected := domain.Article{
		Code:      "TX200",
		Label:     "Red wool",
		QRPayload: "Red wool-TX200",
	}
	mockRepo.On("Save", mock.Anything, expected).Return(expected, nil)

	_, err := svc.CreateArticle(context.Background(), domain.ArticleCreation{Code: "  TX200 ", Label: " Red wool "})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateArticle_RequiresCodeAndLabel(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	svc := articleservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.CreateArticle(context.Background(), domain.ArticleCreation{Code: "TX300"})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestCreateArticle_PropagatesDuplicateConflict(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	svc := articleservice.NewService(mockRepo, logger.NewLogger("error"))

	mockRepo.On("Save", mock.Anything, mock.Anything).
		Return(domain.Article{}, apperror.NewConflictError("article code TX400 already exists"))

	_, err := svc.CreateArticle(context.Background(), domain.ArticleCreation{Code: "TX400", Label: "Grey linen"})

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestGetArticleByCode_RequiresCode(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	svc := articleservice.NewService(mockRepo, logger.NewLogger("error"))

	_, err := svc.GetArticleByCode(context.Background(), "   ")

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "FindByCode")
}

func TestListArticles_ReturnsCatalog(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	svc := articleservice.NewService(mockRepo, logger.NewLogger("error"))

	catalog := []domain.Article{
		{ID: uuid.New().String(), Code: "TX100", Label: "Blue denim"},
		{ID: uuid.New().String(), Code: "TX200", Label: "Red wool"},
	}
	mockRepo.On("FindAll", mock.Anything).Return(catalog, nil)

	articles, err := svc.ListArticles(context.Background())

	assert.NoError(t, err)
	assert.Len(t, articles, 2)
}
