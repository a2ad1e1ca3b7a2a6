package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/inkdrop/internal/client/hierarchy"
)

const (
	uploadRequestPath = "/document-storage/json/2/upload/request"
	updateStatusPath  = "/document-storage/json/2/upload/update-status"
)

// Upload runs the three-phase upload protocol for a packaged document:
//
//  1. reserve a placeholder for doc.ID and obtain the pre-signed blob URL,
//  2. transfer the package bytes to that URL,
//  3. commit the document metadata.
//
// Phases are strictly sequential and never retried. A reserve failure
// leaves no remote state and propagates as-is; a failure in either later
// phase is wrapped in *PartialUploadError carrying doc.ID, since the
// placeholder (and possibly the blob) already exists server-side.
func (c *HTTPClient) Upload(ctx context.Context, token, host string, doc Document, pkg []byte) error {
	blobURL, err := c.reserve(ctx, token, host, doc.ID)
	if err != nil {
		return err
	}

	if err := c.transfer(ctx, blobURL, pkg); err != nil {
		return &PartialUploadError{ID: doc.ID, Phase: "transfer", Err: err}
	}

	if err := c.commit(ctx, token, host, doc); err != nil {
		return &PartialUploadError{ID: doc.ID, Phase: "commit", Err: err}
	}
	return nil
}

func (c *HTTPClient) reserve(ctx context.Context, token, host, id string) (string, error) {
	payload, err := json.Marshal([]uploadRequest{{ID: id, Type: hierarchy.DocumentType, Version: 1}})
	if err != nil {
		return "", err
	}

	body, err := c.do(ctx, http.MethodPut, storageURL(host)+uploadRequestPath, requestOptions{
		body:    payload,
		headers: bearer(token),
	})
	if err != nil {
		return "", fmt.Errorf("upload reserve: %w", err)
	}

	resp, err := decodeUploadResponse(body)
	if err != nil {
		return "", fmt.Errorf("upload reserve: %w", err)
	}
	if resp.BlobURLPut == "" {
		return "", fmt.Errorf("upload reserve: response has no BlobURLPut")
	}
	return resp.BlobURLPut, nil
}

// transfer PUTs the package to the pre-signed blob URL. The URL is already
// scoped to this upload, so no Authorization header is attached.
func (c *HTTPClient) transfer(ctx context.Context, blobURL string, pkg []byte) error {
	_, err := c.do(ctx, http.MethodPut, blobURL, requestOptions{
		body:    pkg,
		headers: map[string]string{"Content-Type": "application/octet-stream"},
	})
	if err != nil {
		return fmt.Errorf("blob transfer: %w", err)
	}
	return nil
}

func (c *HTTPClient) commit(ctx context.Context, token, host string, doc Document) error {
	payload, err := json.Marshal([]Document{doc})
	if err != nil {
		return err
	}

	body, err := c.do(ctx, http.MethodPut, storageURL(host)+updateStatusPath, requestOptions{
		body:    payload,
		headers: bearer(token),
	})
	if err != nil {
		return fmt.Errorf("metadata commit: %w", err)
	}

	if _, err := decodeUploadResponse(body); err != nil {
		return fmt.Errorf("metadata commit: %w", err)
	}
	return nil
}

// decodeUploadResponse parses the single-element response array shared by
// the reserve and commit phases and enforces the Success flag.
func decodeUploadResponse(body []byte) (*uploadResponse, error) {
	var resp []uploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("empty response array")
	}
	if !resp[0].Success {
		return nil, &UploadError{Message: resp[0].Message}
	}
	return &resp[0], nil
}
