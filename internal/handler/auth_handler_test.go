package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) CreateInitialAdmin(ctx context.Context, username, password string, email *string) (*model.User, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) GetCurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) TokenExpiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

func postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_CreateAdmin(t *testing.T) {
	t.Run("incomplete body still conflicts once an admin exists", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("CreateInitialAdmin", mock.Anything, "a", "", (*string)(nil)).
			Return(nil, errors.ErrAdminExists)

		h := NewAuthHandler(mockService)
		c, _ := postJSON(`{"username":"a"}`)

		err := h.CreateAdmin(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
		assert.Equal(t, errors.ErrorResponse{
			Error: errors.ErrAdminExists.Error(),
			Code:  "ADMIN_EXISTS",
		}, httpErr.Message)
		mockService.AssertExpectations(t)
	})

	t.Run("missing fields on first bootstrap", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("CreateInitialAdmin", mock.Anything, "a", "", (*string)(nil)).
			Return(nil, errors.ErrMissingCredentials)

		h := NewAuthHandler(mockService)
		c, _ := postJSON(`{"username":"a"}`)

		err := h.CreateAdmin(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("created", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("CreateInitialAdmin", mock.Anything, "admin", "secret1", (*string)(nil)).
			Return(&model.User{ID: 1, Username: "admin"}, nil)

		h := NewAuthHandler(mockService)
		c, rec := postJSON(`{"username":"admin","password":"secret1"}`)

		err := h.CreateAdmin(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockService.AssertExpectations(t)
	})
}
