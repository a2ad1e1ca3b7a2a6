package packaging

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, pkg []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)

	out := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = data
	}
	return out
}

func TestBuild_ContainsExactlyThreeNamedEntries(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake payload")
	pkg, err := Build("doc-42", pdf)
	require.NoError(t, err)

	entries := readEntries(t, pkg)
	require.Len(t, entries, 3)
	require.Contains(t, entries, "doc-42.content")
	require.Contains(t, entries, "doc-42.pagedata")
	require.Contains(t, entries, "doc-42.pdf")
}

func TestBuild_PDFBytesSurviveUnchanged(t *testing.T) {
	pdf := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff, 0x07}
	pkg, err := Build("x", pdf)
	require.NoError(t, err)

	entries := readEntries(t, pkg)
	require.Equal(t, pdf, entries["x.pdf"])
}

func TestBuild_PagedataIsEmpty(t *testing.T) {
	pkg, err := Build("x", []byte("pdf"))
	require.NoError(t, err)

	entries := readEntries(t, pkg)
	require.Empty(t, entries["x.pagedata"])
}

func TestBuild_ContentDescriptorDefaults(t *testing.T) {
	pkg, err := Build("x", []byte("pdf"))
	require.NoError(t, err)

	entries := readEntries(t, pkg)

	var content map[string]any
	require.NoError(t, json.Unmarshal(entries["x.content"], &content))

	require.Equal(t, "pdf", content["fileType"])
	require.Equal(t, float64(0), content["lastOpenedPage"])
	require.Equal(t, float64(-1), content["lineHeight"])
	require.Equal(t, float64(180), content["margins"])
	require.Equal(t, float64(0), content["pageCount"])
	require.Equal(t, float64(1), content["textScale"])
	require.Equal(t, map[string]any{}, content["extraMetadata"])
	require.Equal(t, map[string]any{}, content["transform"])
}
