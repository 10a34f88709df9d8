package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/dto"
	"github.com/julianaianov/rifamax/internal/service/authservice"
	pkgauth "github.com/julianaianov/rifamax/pkg/auth"
	"github.com/julianaianov/rifamax/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"maria","password":"secret","name":"Maria Silva","cpf":"52998224725"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&domain.User{
					ID:        "user-1",
					Username:  "maria",
					Name:      "Maria Silva",
					CPF:       "52998224725",
					CreatedAt: time.Now(),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing required fields",
			body:          `{"username":"maria"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "username, password and name are required",
		},
		{
			name:          "Invalid CPF",
			body:          `{"username":"maria","password":"secret","name":"Maria Silva","cpf":"11111111111"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid CPF",
		},
		{
			name: "User already exists",
			body: `{"username":"maria","password":"secret","name":"Maria Silva","cpf":"52998224725"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username, email or cpf already registered",
		},
		{
			name: "Internal error",
			body: `{"username":"maria","password":"secret","name":"Maria Silva","cpf":"52998224725"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"username":"maria","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "maria", "secret").Return(&domain.User{ID: "user-1"}, nil)
				service.EXPECT().GenerateToken("user-1").Return("token-123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid credentials",
			body: `{"username":"maria","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "maria", "wrong").Return(nil, errors.New("invalid credentials"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Token generation failure",
			body: `{"username":"maria","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "maria", "secret").Return(&domain.User{ID: "user-1"}, nil)
				service.EXPECT().GenerateToken("user-1").Return("", errors.New("signing error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp dto.TokenResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "token-123", resp.AccessToken)
				assert.Equal(t, "bearer", resp.TokenType)
				assert.Equal(t, "Bearer token-123", rr.Header().Get("Authorization"))
			}

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns current user", func(t *testing.T) {
		service.EXPECT().GetUser(gomock.Any(), "user-1").Return(&domain.User{
			ID:        "user-1",
			Username:  "maria",
			Name:      "Maria Silva",
			CreatedAt: time.Now(),
		}, nil)

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, "user-1"))
		rr := httptest.NewRecorder()

		handler.Me(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.UserResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "maria", resp.Username)
	})

	t.Run("User no longer exists", func(t *testing.T) {
		service.EXPECT().GetUser(gomock.Any(), "user-2").Return(nil, authservice.ErrUserNotFound)

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, "user-2"))
		rr := httptest.NewRecorder()

		handler.Me(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
