// Package backend is the device hub client used by the registration coordinator.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"pushreg/config"
	deliverycontext "pushreg/internal/delivery/context"
	"pushreg/internal/domain/entity"
	"pushreg/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	apiPrefix = "/api/v1"

	// tokenRefreshMargin renews the agent token before it expires in flight.
	tokenRefreshMargin = 30 * time.Second

	maxResponseBodySize = 1 << 20
)

// StatusError is returned for non-2xx device hub responses.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code == "" {
		return "device hub returned status " + http.StatusText(e.StatusCode)
	}

	return "device hub returned " + e.Code + ": " + e.Message
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type httpClient struct {
	baseURL      string
	httpClient   *http.Client
	tokenService service.TokenService
	subject      string
	logger       *slog.Logger
	now          func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewHTTPClient creates the device hub client from the registration and auth configuration
func NewHTTPClient(cfg *config.Config, tokenService service.TokenService, logger *slog.Logger) (service.BackendClient, error) {
	if cfg.Registration == nil || cfg.Registration.BackendURL == "" {
		return nil, errors.New("registration.backendUrl is required")
	}
	if _, err := url.ParseRequestURI(cfg.Registration.BackendURL); err != nil {
		return nil, errors.Wrap(err, "invalid registration.backendUrl")
	}

	subject := "registrar"
	if cfg.Auth != nil && cfg.Auth.AgentSubject != "" {
		subject = cfg.Auth.AgentSubject
	}

	return &httpClient{
		baseURL:      strings.TrimRight(cfg.Registration.BackendURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Registration.RequestTimeout},
		tokenService: tokenService,
		subject:      subject,
		logger:       logger,
		now:          time.Now,
	}, nil
}

// GetDevice returns nil without error when the hub has no record for deviceID
func (c *httpClient) GetDevice(ctx context.Context, deviceID string) (*entity.DeviceRecord, error) {
	var record entity.DeviceRecord

	err := c.do(ctx, http.MethodGet, "/devices/"+url.PathEscape(deviceID), nil, &record)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &record, nil
}

func (c *httpClient) GetUserDevices(ctx context.Context, userID string) ([]*entity.DeviceRecord, error) {
	var records []*entity.DeviceRecord
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/devices", nil, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (c *httpClient) DeactivateDevice(ctx context.Context, deviceID string) (bool, error) {
	var result struct {
		Deactivated bool `json:"deactivated"`
	}
	if err := c.do(ctx, http.MethodDelete, "/devices/"+url.PathEscape(deviceID), nil, &result); err != nil {
		return false, err
	}

	return result.Deactivated, nil
}

func (c *httpClient) RegisterDevice(ctx context.Context, reg *entity.DeviceRegistration) (*entity.DeviceRecord, error) {
	var record entity.DeviceRecord
	if err := c.do(ctx, http.MethodPost, "/devices", reg, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// do sends one authenticated request and decodes the response envelope's data into out
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := c.agentToken()
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	c.logger.Debug("Device hub call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", c.now().Sub(start)),
	)

	var env envelope
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		if decodeErr == nil && env.Error != nil {
			statusErr.Code = env.Error.Code
			statusErr.Message = env.Error.Message
		}
		if resp.StatusCode == http.StatusUnauthorized {
			c.resetToken()
		}

		return errors.WithStack(statusErr)
	}

	if decodeErr != nil {
		return errors.Wrapf(decodeErr, "decode %s %s response", method, path)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.Wrapf(json.Unmarshal(env.Data, out), "decode %s %s data", method, path)
}

// agentToken returns a cached agent token, issuing a new one close to expiry
func (c *httpClient) agentToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.token != "" && now.Add(tokenRefreshMargin).Before(c.tokenExpiry) {
		return c.token, nil
	}

	token, err := c.tokenService.GenerateAgentToken(c.subject, entity.Roles{entity.RoleDeviceAgent}.ToStrings())
	if err != nil {
		return "", errors.Wrap(err, "issue agent token")
	}

	c.token = token
	c.tokenExpiry = now.Add(c.tokenService.TokenTTL())

	return token, nil
}

func (c *httpClient) resetToken() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
}
