package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fraservotes/console/internal/httputil"
	onboardingDomain "github.com/fraservotes/console/internal/onboarding/domain"
	"github.com/fraservotes/console/internal/onboarding/http/dto"
	"github.com/fraservotes/console/internal/onboarding/http/mocks"
	onboardingUseCase "github.com/fraservotes/console/internal/onboarding/usecase"
	"github.com/fraservotes/console/internal/route"
)

const testDeviceCookie = "fv_device"

func setupTestHandler(t *testing.T) (*OnboardingHandler, *mocks.MockOnboardingUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	mockUseCase := &mocks.MockOnboardingUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOnboardingHandler(mockUseCase, httputil.Cookie{Name: testDeviceCookie}, logger), mockUseCase
}

func createTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	return c, w
}

func stepView(index int) *onboardingUseCase.View {
	steps := onboardingDomain.DefaultSteps()
	return &onboardingUseCase.View{Snapshot: onboardingDomain.Snapshot{
		State: onboardingDomain.StateStep, StepIndex: index, StepCount: len(steps), Step: &steps[index],
	}}
}

func TestOnboardingHandler_GetHandler(t *testing.T) {
	t.Run("Success_IssuesDeviceCookie", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Start", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(stepView(0), nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/onboarding")
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, testDeviceCookie, cookies[0].Name)
		_, err := uuid.Parse(cookies[0].Value)
		assert.NoError(t, err)

		var response dto.OnboardingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "step", response.State)
		assert.Equal(t, "Next", response.NextLabel)
	})

	t.Run("Success_ReusesDeviceCookie", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		deviceID := uuid.Must(uuid.NewV7())
		nav := route.ReplaceWith(route.Home)
		mockUseCase.On("Start", mock.Anything, deviceID).Return(&onboardingUseCase.View{
			Snapshot: onboardingDomain.CompletedSnapshot(4),
			Navigate: &nav,
		}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/onboarding")
		c.Request.AddCookie(&http.Cookie{Name: testDeviceCookie, Value: deviceID.String()})
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())

		var response dto.OnboardingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "completed", response.State)
		require.NotNil(t, response.Navigation)
		assert.True(t, response.Navigation.Replace)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_ReplacesMalformedCookie", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Start", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(stepView(0), nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/onboarding")
		c.Request.AddCookie(&http.Cookie{Name: testDeviceCookie, Value: "not-a-uuid"})
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Result().Cookies(), 1)
	})
}

func TestOnboardingHandler_Transitions(t *testing.T) {
	deviceID := uuid.Must(uuid.NewV7())

	t.Run("Success_Next", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Next", mock.Anything, deviceID).Return(stepView(3), nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/onboarding/next")
		c.Request.AddCookie(&http.Cookie{Name: testDeviceCookie, Value: deviceID.String()})
		handler.NextHandler(c)

		var response dto.OnboardingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 3, response.StepIndex)
		assert.Equal(t, "Get Started", response.NextLabel)
	})

	t.Run("Success_Skip", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		nav := route.ReplaceWith(route.Home)
		mockUseCase.On("Skip", mock.Anything, deviceID).Return(&onboardingUseCase.View{
			Snapshot: onboardingDomain.CompletedSnapshot(4),
			Navigate: &nav,
		}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/onboarding/skip")
		c.Request.AddCookie(&http.Cookie{Name: testDeviceCookie, Value: deviceID.String()})
		handler.SkipHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"navigation":{"path":"/","replace":true}`)
	})

	t.Run("Error_NotReady", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Close", mock.Anything, deviceID).Return(nil, onboardingDomain.ErrNotReady).Once()

		c, w := createTestContext(http.MethodPost, "/v1/onboarding/close")
		c.Request.AddCookie(&http.Cookie{Name: testDeviceCookie, Value: deviceID.String()})
		handler.CloseHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_FlowNotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Next", mock.Anything, deviceID).Return(nil, onboardingDomain.ErrFlowNotFound).Once()

		c, w := createTestContext(http.MethodPost, "/v1/onboarding/next")
		c.Request.AddCookie(&http.Cookie{Name: testDeviceCookie, Value: deviceID.String()})
		handler.NextHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
