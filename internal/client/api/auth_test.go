package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterDevice_PostsCodeAndFreshDeviceID(t *testing.T) {
	var payloads []deviceRegistration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, deviceTokenPath, r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var reg deviceRegistration
		require.NoError(t, json.Unmarshal(body, &reg))
		payloads = append(payloads, reg)

		_, _ = w.Write([]byte("device-token-" + reg.Code))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.URL)
	ctx := context.Background()

	tok1, err := c.RegisterDevice(ctx, "abcdwxyz")
	require.NoError(t, err)
	require.Equal(t, "device-token-abcdwxyz", tok1)

	_, err = c.RegisterDevice(ctx, "efghijkl")
	require.NoError(t, err)

	require.Len(t, payloads, 2)
	require.Equal(t, "abcdwxyz", payloads[0].Code)
	require.Equal(t, "efghijkl", payloads[1].Code)
	require.Equal(t, deviceDesc, payloads[0].DeviceDesc)

	// a fresh random device ID per call
	require.NotEmpty(t, payloads[0].DeviceID)
	require.NotEmpty(t, payloads[1].DeviceID)
	require.NotEqual(t, payloads[0].DeviceID, payloads[1].DeviceID)
}

func TestRegisterDevice_ServerRejectionPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid code", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.URL)
	_, err := c.RegisterDevice(context.Background(), "badbadba")

	var rerr *RequestError
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, http.StatusUnauthorized, rerr.Status)
}

func TestNewUserToken_SendsDeviceTokenAsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, userTokenPath, r.URL.Path)
		require.Equal(t, "Bearer the-device-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("session-token"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.URL)
	tok, err := c.NewUserToken(context.Background(), "the-device-token")
	require.NoError(t, err)
	require.Equal(t, "session-token", tok)
}
