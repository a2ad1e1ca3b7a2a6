package api

import "fmt"

// RequestError reports a non-2xx response from any endpoint. The response
// body is preserved verbatim so the server's explanation is never lost.
type RequestError struct {
	Status int
	URL    string
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.Status, e.Body)
}

// UploadError reports a reserve or commit response whose Success flag was
// false. Message is the server-provided reason.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload rejected by server: %s", e.Message)
}

// PartialUploadError reports an upload that failed after the reserve phase
// already succeeded. The service may now hold a placeholder (and, if the
// transfer went through, an orphaned blob) under ID; cleanup is manual.
type PartialUploadError struct {
	ID    string
	Phase string
	Err   error
}

func (e *PartialUploadError) Error() string {
	return fmt.Sprintf("upload of document %s failed during %s (manual cleanup may be needed): %v", e.ID, e.Phase, e.Err)
}

func (e *PartialUploadError) Unwrap() error { return e.Err }
