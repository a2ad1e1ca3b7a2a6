package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DiscoverStorageHost resolves the hostname of the document-storage service
// via the service manager. The host may change between sessions, so the
// result is never cached across runs.
func (c *HTTPClient) DiscoverStorageHost(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, c.discoveryURL, requestOptions{})
	if err != nil {
		return "", fmt.Errorf("service discovery: %w", err)
	}

	var resp discoveryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("service discovery: decoding response: %w", err)
	}
	if resp.Host == "" {
		return "", fmt.Errorf("service discovery: response has no Host (status %q)", resp.Status)
	}
	return resp.Host, nil
}
