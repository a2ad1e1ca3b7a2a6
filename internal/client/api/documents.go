package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/inkdrop/internal/client/hierarchy"
)

const docsPath = "/document-storage/json/2/docs"

// ListDocuments fetches the full flat listing of remote nodes, documents
// and collections alike.
func (c *HTTPClient) ListDocuments(ctx context.Context, token, host string) ([]hierarchy.Entry, error) {
	body, err := c.do(ctx, http.MethodGet, storageURL(host)+docsPath, requestOptions{
		headers: bearer(token),
	})
	if err != nil {
		return nil, fmt.Errorf("document listing: %w", err)
	}

	var entries []hierarchy.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("document listing: decoding response: %w", err)
	}
	return entries, nil
}
