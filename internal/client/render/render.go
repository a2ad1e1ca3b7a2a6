// Package render turns a puzzle page URL into a titled PDF. The rest of
// the application depends only on the Renderer interface, so the headless
// browser never leaks into the upload logic or its tests.
package render

import "context"

// Renderer produces a PDF snapshot of the page at url together with the
// page title (used as the document's visible name).
type Renderer interface {
	Render(ctx context.Context, url string) (title string, pdf []byte, err error)
}
