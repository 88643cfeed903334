package stockservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"texstock/internal/domain"
	apperror "texstock/internal/errors"
	"texstock/internal/pkg/logger"
	"texstock/internal/service/stockservice"
)

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) FindByCode(ctx context.Context, code string) (domain.Article, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByQRPayload(ctx context.Context, qrPayload string) (domain.Article, error) {
	args := m.Called(ctx, qrPayload)
	return args.Get(0).(domain.Article), args.Error(1)
}

type MockSampleDirectory struct {
	mock.Mock
}

func (m *MockSampleDirectory) ResolveOrCreate(ctx context.Context, articleID, displayName string) (domain.Sample, error) {
	args := m.Called(ctx, articleID, displayName)
	return args.Get(0).(domain.Sample), args.Error(1)
}

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) FindByCode(ctx context.Context, code string) (domain.Slot, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) AddSample(ctx context.Context, slotCode, sampleID string, quantity int) (domain.Slot, error) {
	args := m.Called(ctx, slotCode, sampleID, quantity)
	return args.Get(0).(domain.Slot), args.Error(1)
}

func newService(articles *MockArticleRepository, samples *MockSampleDirectory, slots *MockSlotRepository) *stockservice.Service {
	return stockservice.NewService(articles, samples, slots, logger.NewLogger("error"))
}

func TestStock_SuccessByQRPayload(t *testing.T) {
	mockArticles := new(MockArticleRepository)
	mockSamples := new(MockSampleDirectory)
	mockSlots := new(MockSlotRepository)
	svc := newService(mockArticles, mockSamples, mockSlots)

	article := domain.Article{ID: uuid.New().String(), Code: "TX100", Label: "Blue denim", QRPayload: "Blue denim-TX100"}
	sample := domain.Sample{ID: uuid.New().String(), ArticleID: article.ID, DisplayName: article.Label}
	slot := domain.NewSlot(domain.Coordinates{Aisle: 1, Floor: 1, Bay: 1}, domain.KindStorage)

	mockArticles.On("FindByQRPayload", mock.Anything, "Blue denim-TX100").Return(article, nil)
	mockSlots.On("FindByCode", mock.Anything, "010101").Return(slot, nil)
	mockSamples.On("ResolveOrCreate", mock.Anything, article.ID, article.Label).Return(sample, nil)
	mockSlots.On("AddSample", mock.Anything, "010101", sample.ID, 5).Return(slot, nil)

	result, err := svc.Stock(context.Background(), domain.StockRequest{
		QRPayload: "Blue denim-TX100",
		Quantity:  5,
		SlotCode:  "010101",
	})

	assert.NoError(t, err)
	assert.Equal(t, sample.ID, result.Sample.ID)
	assert.Equal(t, "010101", result.SlotCode)
	assert.Equal(t, 5, result.Quantity)
	mockArticles.AssertExpectations(t)
	mockSamples.AssertExpectations(t)
	mockSlots.AssertExpectations(t)
}

func TestStock_SuccessByArticleCode(t *testing.T) {
	mockArticles := new(MockArticleRepository)
	mockSamples := new(MockSampleDirectory)
	mockSlots := new(MockSlotRepository)
	svc := newService(mockArticles, mockSamples, mockSlots)

	article := domain.Article{ID: uuid.New().String(), Code: "TX200", Label: "Red wool"}
	sample := domain.Sample{ID: uuid.New().String(), ArticleID: article.ID}
	slot := domain.NewSlot(domain.Coordinates{Aisle: 2, Floor: 3, Bay: 4}, domain.KindStorage)

	mockArticles.On("FindByCode", mock.Anything, "TX200").Return(article, nil)
	mockSlots.On("FindByCode", mock.Anything, "020304").Return(slot, nil)
	mockSamples.On("ResolveOrCreate", mock.Anything, article.ID, article.Label).Return(sample, nil)
	mockSlots.On("AddSample", mock.Anything, "020304", sample.ID, 1).Return(slot, nil)

	_, err := svc.Stock(context.Background(), domain.StockRequest{
		ArticleCode: "TX200",
		Quantity:    1,
		SlotCode:    "020304",
	})

	assert.NoError(t, err)
	mockArticles.AssertNotCalled(t, "FindByQRPayload")
}

func TestStock_MissingArticleReference(t *testing.T) {
	mockArticles := new(MockArticleRepository)
	mockSamples := new(MockSampleDirectory)
	mockSlots := new(MockSlotRepository)
	svc := newService(mockArticles, mockSamples, mockSlots)

	_, err := svc.Stock(context.Background(), domain.StockRequest{Quantity: 1, SlotCode: "010101"})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockArticles.AssertNotCalled(t, "FindByCode")
	mockArticles.AssertNotCalled(t, "FindByQRPayload")
}

func TestStock_NonPositiveQuantity(t *testing.T) {
	mockArticles := new(MockArticleRepository)
	mockSamples := new(MockSampleDirectory)
	mockSlots := new(MockSlotRepository)
	svc := newService(mockArticles, mockSamples, mockSlots)

	article := domain.Article{ID: uuid.New().String(), Code: "TX300"}
	mockArticles.On("FindByCode", mock.Anything, "TX300").Return(article, nil)

	_, err := svc.Stock(context.Background(), domain.StockRequest{
		ArticleCode: "TX300",
		Quantity:    0,
		SlotCode:    "010101",
	})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	mockSamples.AssertNotCalled(t, "ResolveOrCreate")
	mockSlots.AssertNotCalled(t, "AddSample")
}

// A stocking attempt against a missing slot must not leave a sample row
// behind, so the slot lookup runs before sample resolution.
func TestStock_UnknownSlotDoesNotCreateSample(t *testing.T) {
	mockArticles := new(MockArticleRepository)
	mockSamples := new(MockSampleDirectory)
	mockSlots := new(MockSlotRepository)
	svc := newService(mockArticles, mockSamples, mockSlots)

	article := domain.Article{ID: uuid.New().String(), Code: "TX400", Label: "Grey linen"}
	mockArticles.On("FindByCode", mock.Anything, "TX400").Return(article, nil)
	mockSlots.On("FindByCode", mock.Anything, "999998").Return(domain.Slot{}, apperror.NewNotFoundError("slot 999998 not found"))

	_, err := svc.Stock(context.Background(), domain.StockRequest{
		ArticleCode: "TX400",
		Quantity:    3,
		SlotCode:    "999998",
	})

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	mockSamples.AssertNotCalled(t, "ResolveOrCreate")
	mockSlots.AssertNotCalled(t, "AddSample")
}

func TestStock_CapacityExceededPropagates(t *testing.T) {
	mockArticles := new(MockArticleRepository)
	mockSamples := new(MockSampleDirectory)
	mockSlots := new(MockSlotRepository)
	svc := newService(mockArticles, mockSamples, mockSlots)

	article := domain.Article{ID: uuid.New().String(), Code: "TX500", Label: "Black silk"}
	sample := domain.Sample{ID: uuid.New().String(), ArticleID: article.ID}
	slot := domain.NewSlot(domain.Coordinates{Aisle: 1, Floor: 1, Bay: 1}, domain.KindStorage)

	mockArticles.On("FindByCode", mock.Anything, "TX500").Return(article, nil)
	mockSlots.On("FindByCode", mock.Anything, "010101").Return(slot, nil)
	mockSamples.On("ResolveOrCreate", mock.Anything, article.ID, article.Label).Return(sample, nil)
	mockSlots.On("AddSample", mock.Anything, "010101", sample.ID, 25).
		Return(domain.Slot{}, apperror.NewCapacityExceededError("slot 010101 holds 10 unit(s), adding 25 exceeds the capacity of 30"))

	_, err := svc.Stock(context.Background(), domain.StockRequest{
		ArticleCode: "TX500",
		Quantity:    25,
		SlotCode:    "010101",
	})

	var rule *apperror.RuleError
	assert.ErrorAs(t, err, &rule)
	assert.Equal(t, apperror.CategoryCapacityExceeded, rule.Category())
}

func TestStock_UnknownArticle(t *testing.T) {
	mockArticles := new(MockArticleRepository)
	mockSamples := new(MockSampleDirectory)
	mockSlots := new(MockSlotRepository)
	svc := newService(mockArticles, mockSamples, mockSlots)

	mockArticles.On("FindByQRPayload", mock.Anything, "Nope-XX1").
		Return(domain.Article{}, apperror.NewNotFoundError("no article for QR payload Nope-XX1"))

	_, err := svc.Stock(context.Background(), domain.StockRequest{
		QRPayload: "Nope-XX1",
		Quantity:  1,
		SlotCode:  "010101",
	})

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	mockSlots.AssertNotCalled(t, "FindByCode")
}
