package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockHomepageRepository is a mock implementation of HomepageRepository.
type MockHomepageRepository struct {
	mock.Mock
}

func (m *MockHomepageRepository) First(ctx context.Context) (*model.HomePage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HomePage), args.Error(1)
}

func (m *MockHomepageRepository) Create(ctx context.Context, page *model.HomePage) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *MockHomepageRepository) Save(ctx context.Context, page *model.HomePage) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func TestHomepageService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		title := "Studio"
		mockRepo := new(MockHomepageRepository)
		mockRepo.On("First", mock.Anything).Return(&model.HomePage{MainTitle: &title}, nil)

		service := NewHomepageService(mockRepo, nil)
		page, err := service.Get(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "Studio", *page.MainTitle)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockHomepageRepository)
		mockRepo.On("First", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		service := NewHomepageService(mockRepo, nil)
		_, err := service.Get(context.Background())

		assert.Equal(t, errors.ErrHomepageNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestHomepageService_Update(t *testing.T) {
	t.Run("patches existing row", func(t *testing.T) {
		oldTitle := "Old"
		oldSlogan := "Keep me"
		mockRepo := new(MockHomepageRepository)
		mockRepo.On("First", mock.Anything).Return(&model.HomePage{
			MainTitle: &oldTitle,
			Slogan:    &oldSlogan,
		}, nil)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		service := NewHomepageService(mockRepo, nil)

		newTitle := "New"
		page, err := service.Update(context.Background(), &model.HomePage{MainTitle: &newTitle})

		assert.NoError(t, err)
		assert.Equal(t, "New", *page.MainTitle)
		assert.Equal(t, "Keep me", *page.Slogan)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("creates singleton when absent", func(t *testing.T) {
		mockRepo := new(MockHomepageRepository)
		mockRepo.On("First", mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		service := NewHomepageService(mockRepo, nil)

		slogan := "Fresh start"
		page, err := service.Update(context.Background(), &model.HomePage{Slogan: &slogan})

		assert.NoError(t, err)
		assert.Equal(t, "Fresh start", *page.Slogan)
		assert.Nil(t, page.MainTitle)
		mockRepo.AssertExpectations(t)
	})
}
