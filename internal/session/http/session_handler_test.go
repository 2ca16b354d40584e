package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fraservotes/console/internal/httputil"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
	"github.com/fraservotes/console/internal/session/http/dto"
	httpMocks "github.com/fraservotes/console/internal/session/http/mocks"
)

var testCookie = httputil.Cookie{Name: "fv_session"}

func setupTestHandler(t *testing.T) (*SessionHandler, *httpMocks.MockSessionUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockSessionUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewSessionHandler(mockUseCase, sessionDomain.RouteContext{VotingOpen: true}, testCookie, logger)
	return handler, mockUseCase
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func superAdminSession() sessionDomain.Session {
	return sessionDomain.Session{
		User:    &sessionDomain.Identity{ID: uuid.Must(uuid.NewV7()), DisplayName: "Akshat"},
		Role:    sessionDomain.RoleSuperAdmin,
		TokenID: uuid.Must(uuid.NewV7()),
	}
}

func TestSessionHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		expiresAt := time.Now().UTC().Add(time.Hour)
		mockUseCase.On("Login", mock.Anything, &sessionDomain.LoginInput{
			Email:    "akshat@example.com",
			Password: "secret",
		}).Return(&sessionDomain.LoginOutput{
			PlainToken: "plain-token",
			ExpiresAt:  expiresAt,
			Session:    superAdminSession(),
		}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/session", dto.LoginRequest{
			Email:    "akshat@example.com",
			Password: "secret",
		})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "plain-token", response.Token)
		assert.True(t, response.Session.Authenticated)
		assert.True(t, response.Session.Capabilities.IsSuperAdmin)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "fv_session", cookies[0].Name)
		assert.Equal(t, "plain-token", cookies[0].Value)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/session", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_ValidationFails", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/session", dto.LoginRequest{Email: "not-an-email"})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Login", mock.Anything, mock.Anything).
			Return(nil, sessionDomain.ErrInvalidCredentials).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/session", dto.LoginRequest{
			Email:    "akshat@example.com",
			Password: "wrong",
		})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestSessionHandler_GetHandler(t *testing.T) {
	t.Run("Success_Anonymous", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		c, w := createTestContext(http.MethodGet, "/v1/session", nil)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Authenticated)
		assert.Nil(t, response.User)
	})

	t.Run("Success_Authenticated", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		c, w := createTestContext(http.MethodGet, "/v1/session", nil)
		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), superAdminSession()))

		handler.GetHandler(c)

		var response dto.SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Authenticated)
		assert.Equal(t, "Akshat", response.User.DisplayName)
		assert.Equal(t, "superadmin", response.Role)
	})
}

func TestSessionHandler_LogoutHandler(t *testing.T) {
	t.Run("Success_RevokesAndClearsCookie", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Logout", mock.Anything, "hash").Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/session", nil)
		c.Request = c.Request.WithContext(WithTokenHash(c.Request.Context(), "hash"))

		handler.LogoutHandler(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_NoTokenSkipsRevoke", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodDelete, "/v1/session", nil)

		handler.LogoutHandler(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUseCase.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("Error_RevokeFails", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Logout", mock.Anything, "hash").Return(errors.New("db down")).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/session", nil)
		c.Request = c.Request.WithContext(WithTokenHash(c.Request.Context(), "hash"))

		handler.LogoutHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
