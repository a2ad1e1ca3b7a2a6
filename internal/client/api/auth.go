package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

const (
	deviceTokenPath = "/token/json/2/device/new"
	userTokenPath   = "/token/json/2/user/new"

	// deviceDesc identifies the kind of client to the auth service.
	deviceDesc = "desktop-linux"
)

// RegisterDevice exchanges an 8-character one-time code for a long-lived
// device token. A fresh random device ID is generated per call. The caller
// validates the code length up front; a bad code is only detected by the
// server and surfaces as a *RequestError.
func (c *HTTPClient) RegisterDevice(ctx context.Context, code string) (string, error) {
	payload, err := json.Marshal(deviceRegistration{
		Code:       code,
		DeviceDesc: deviceDesc,
		DeviceID:   uuid.NewString(),
	})
	if err != nil {
		return "", err
	}

	body, err := c.do(ctx, http.MethodPost, c.authHost+deviceTokenPath, requestOptions{
		body:    payload,
		headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		return "", fmt.Errorf("device registration: %w", err)
	}
	return string(body), nil
}

// NewUserToken exchanges the device token for a short-lived session bearer
// token. Called once per run; the result is never persisted.
func (c *HTTPClient) NewUserToken(ctx context.Context, deviceToken string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, c.authHost+userTokenPath, requestOptions{
		headers: bearer(deviceToken),
	})
	if err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return string(body), nil
}
