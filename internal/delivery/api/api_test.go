package api_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pushreg/config"
	"pushreg/internal/delivery/api"
	"pushreg/internal/delivery/api/middleware"
	"pushreg/internal/delivery/api/router"
	"pushreg/internal/delivery/api/router/handler"
	"pushreg/internal/domain/entity"
	domainerrors "pushreg/internal/domain/errors"
	"pushreg/internal/domain/service"
	"pushreg/internal/infra/auth"
	mockUsecase "pushreg/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo         *echo.Echo
	deviceUC     *mockUsecase.MockDeviceUsecase
	tokenService service.TokenService
}

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{Auth: &config.AuthConfig{AgentTokenTTL: time.Minute}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"

	logger := slog.New(slog.DiscardHandler)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	e := api.NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: deviceUC, Logger: logger}),
		HealthHandler:  handler.NewHealthHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokenService}),
	}).RegisterRoutes(e)

	return apiFixtures{echo: e, deviceUC: deviceUC, tokenService: tokenService}
}

func (f apiFixtures) do(t *testing.T, method, path, body string, roles ...entity.Role) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if roles != nil {
		token, err := f.tokenService.GenerateAgentToken("registrar", entity.Roles(roles).ToStrings())
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_RequiresAgentToken(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodGet, "/api/v1/devices/fcm_a_b", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrAgentTokenInvalid.ErrorCode(), decode(t, rec).Error.Code)
}

func TestAPI_RequiresDeviceAgentRole(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodGet, "/api/v1/devices/fcm_a_b", "", entity.Role("viewer"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_RegisterDevice_Created(t *testing.T) {
	fx := createTestAPI(t)

	record := &entity.DeviceRecord{ID: uuid.New(), DeviceID: "fcm_a_b", UserID: "user-1", Platform: "fcm", PushToken: "secret-token", IsActive: true}
	fx.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, &entity.DeviceRegistration{
			DeviceID:  "fcm_a_b",
			UserID:    "user-1",
			Platform:  "fcm",
			PushToken: "secret-token",
			Tags:      []string{"beta"},
		}).
		Return(record, nil)

	rec := fx.do(t, http.MethodPost, "/api/v1/devices",
		`{"device_id":"fcm_a_b","user_id":"user-1","platform":"fcm","push_token":"secret-token","tags":["beta"]}`,
		entity.RoleDeviceAgent)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret-token")

	var got entity.DeviceRecord
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, record.ID, got.ID)
	assert.True(t, got.IsActive)
}

func TestAPI_RegisterDevice_ValidationFailed(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(t, http.MethodPost, "/api/v1/devices",
		`{"device_id":"has space","user_id":"user-1","platform":"carrier-pigeon","push_token":"t"}`,
		entity.RoleDeviceAgent)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
	assert.Equal(t, "identifier", env.Error.Details["DeviceID"])
	assert.Equal(t, "oneof", env.Error.Details["Platform"])
}

func TestAPI_RegisterDevice_InvalidPushToken(t *testing.T) {
	fx := createTestAPI(t)

	fx.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, mock.AnythingOfType("*entity.DeviceRegistration")).
		Return(nil, domainerrors.ErrInvalidPushToken)

	rec := fx.do(t, http.MethodPost, "/api/v1/devices",
		`{"device_id":"fcm_a_b","user_id":"user-1","platform":"fcm","push_token":"bad"}`,
		entity.RoleDeviceAgent)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidPushToken.ErrorCode(), decode(t, rec).Error.Code)
}

func TestAPI_GetDevice(t *testing.T) {
	fx := createTestAPI(t)

	fx.deviceUC.EXPECT().
		GetDevice(mock.Anything, "fcm_a_b").
		Return(&entity.DeviceRecord{DeviceID: "fcm_a_b", IsActive: true}, nil)

	rec := fx.do(t, http.MethodGet, "/api/v1/devices/fcm_a_b", "", entity.RoleDeviceAgent)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"device_id":"fcm_a_b"`)
}

func TestAPI_GetDevice_NotFound(t *testing.T) {
	fx := createTestAPI(t)

	fx.deviceUC.EXPECT().GetDevice(mock.Anything, "missing").Return(nil, domainerrors.ErrDeviceNotFound)

	rec := fx.do(t, http.MethodGet, "/api/v1/devices/missing", "", entity.RoleDeviceAgent)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, domainerrors.ErrDeviceNotFound.ErrorCode(), env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAPI_GetUserDevices_EmptyListIsArray(t *testing.T) {
	fx := createTestAPI(t)

	fx.deviceUC.EXPECT().GetUserDevices(mock.Anything, "user-1").Return(nil, nil)

	rec := fx.do(t, http.MethodGet, "/api/v1/users/user-1/devices", "", entity.RoleDeviceAgent)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestAPI_DeactivateDevice(t *testing.T) {
	fx := createTestAPI(t)

	fx.deviceUC.EXPECT().DeactivateDevice(mock.Anything, "fcm_a_b").Return(false, nil)

	rec := fx.do(t, http.MethodDelete, "/api/v1/devices/fcm_a_b", "", entity.RoleDeviceAgent)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deactivated":false}`, string(decode(t, rec).Data))
}

func TestAPI_InternalErrorIsHidden(t *testing.T) {
	fx := createTestAPI(t)

	fx.deviceUC.EXPECT().GetUserDevices(mock.Anything, "user-1").Return(nil, errors.New("pq: password authentication failed"))

	rec := fx.do(t, http.MethodGet, "/api/v1/users/user-1/devices", "", entity.RoleDeviceAgent)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), decode(t, rec).Error.Code)
}

func TestAPI_PropagatesRequestID(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "client-req-1")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, "client-req-1", rec.Header().Get("X-Request-Id"))
}
