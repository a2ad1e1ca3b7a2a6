package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/inkdrop/internal/client/hierarchy"
	"github.com/dmitrijs2005/inkdrop/internal/common"
)

// Client is the remote-API surface the rest of the application depends on.
type Client interface {
	RegisterDevice(ctx context.Context, code string) (string, error)
	NewUserToken(ctx context.Context, deviceToken string) (string, error)
	DiscoverStorageHost(ctx context.Context) (string, error)
	ListDocuments(ctx context.Context, token, host string) ([]hierarchy.Entry, error)
	Upload(ctx context.Context, token, host string, doc Document, pkg []byte) error
}

// HTTPClient is the concrete Client talking JSON over HTTPS.
type HTTPClient struct {
	authHost     string
	discoveryURL string
	httpc        *http.Client
}

// NewHTTPClient constructs a client against the given auth host (scheme
// included) and discovery URL.
func NewHTTPClient(authHost, discoveryURL string) *HTTPClient {
	return &HTTPClient{
		authHost:     strings.TrimRight(authHost, "/"),
		discoveryURL: discoveryURL,
		httpc:        &http.Client{},
	}
}

// requestOptions carries the optional parts of a request: a body and extra
// headers merged over the defaults.
type requestOptions struct {
	body    []byte
	headers map[string]string
}

// do issues a single HTTP request. The fixed product User-Agent is always
// set; caller headers are merged on top. Any non-2xx status is returned as
// a *RequestError carrying the status code, URL, and body text.
func (c *HTTPClient) do(ctx context.Context, method, url string, opts requestOptions) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(opts.body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", common.UserAgent)
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Status: resp.StatusCode, URL: url, Body: string(data)}
	}
	return data, nil
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// storageURL turns the discovered storage host into a base URL. Discovery
// returns a bare hostname; test servers hand over a full URL.
func storageURL(host string) string {
	if strings.Contains(host, "://") {
		return strings.TrimRight(host, "/")
	}
	return "https://" + host
}
