// Package packaging builds the upload container the storage service
// expects: a ZIP archive holding the content descriptor, an empty page-data
// entry, and the PDF payload, all named after the document ID.
package packaging

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
)

// contentDescriptor is the <id>.content entry. Field values are the fixed
// defaults for a freshly uploaded PDF; the device fills in the rest after
// the first sync.
type contentDescriptor struct {
	ExtraMetadata  map[string]string `json:"extraMetadata"`
	FileType       string            `json:"fileType"`
	LastOpenedPage int               `json:"lastOpenedPage"`
	LineHeight     int               `json:"lineHeight"`
	Margins        int               `json:"margins"`
	PageCount      int               `json:"pageCount"`
	TextScale      int               `json:"textScale"`
	Transform      map[string]string `json:"transform"`
}

func defaultContent() contentDescriptor {
	return contentDescriptor{
		ExtraMetadata: map[string]string{},
		FileType:      "pdf",
		LineHeight:    -1,
		Margins:       180,
		TextScale:     1,
		Transform:     map[string]string{},
	}
}

// Build serializes the three-entry upload package for the document id with
// the given PDF payload. Entry names are load-bearing; compression level
// is not.
func Build(id string, pdf []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	content, err := json.Marshal(defaultContent())
	if err != nil {
		return nil, err
	}

	entries := []struct {
		name string
		data []byte
	}{
		{id + ".content", content},
		{id + ".pagedata", nil},
		{id + ".pdf", pdf},
	}

	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("package entry %s: %w", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("package entry %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
