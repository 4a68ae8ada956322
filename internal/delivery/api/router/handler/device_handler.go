package handler

import (
	"log/slog"
	"net/http"

	"pushreg/internal/delivery/api/response"
	"pushreg/internal/domain/entity"
	"pushreg/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	DeviceID  string   `json:"device_id" validate:"required,max=255,identifier"`
	UserID    string   `json:"user_id" validate:"required,max=255,identifier"`
	Platform  string   `json:"platform" validate:"required,oneof=fcm apns web"`
	PushToken string   `json:"push_token" validate:"required,max=4096"`
	Tags      []string `json:"tags" validate:"max=32,dive,required,max=64"`
}

type deviceIDParam struct {
	DeviceID string `param:"deviceId" validate:"required,max=255,identifier"`
}

type userIDParam struct {
	UserID string `param:"userId" validate:"required,max=255,identifier"`
}

// DeactivateDeviceResponse reports whether the call changed the record
type DeactivateDeviceResponse struct {
	Deactivated bool `json:"deactivated"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), &entity.DeviceRegistration{
		DeviceID:  req.DeviceID,
		UserID:    req.UserID,
		Platform:  req.Platform,
		PushToken: req.PushToken,
		Tags:      req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetDevice handles retrieving a single device record
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	var param deviceIDParam
	if err := bindParam(c, &param); err != nil {
		return err
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), param.DeviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// GetUserDevices handles retrieving all devices of a user
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	var param userIDParam
	if err := bindParam(c, &param); err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), param.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if devices == nil {
		devices = []*entity.DeviceRecord{}
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	var param deviceIDParam
	if err := bindParam(c, &param); err != nil {
		return err
	}

	changed, err := h.deviceUC.DeactivateDevice(c.Request().Context(), param.DeviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeactivateDeviceResponse{Deactivated: changed})
}

func bindParam(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindPathParams(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid path parameter")
	}

	return c.Validate(dst)
}
