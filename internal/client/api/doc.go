// Package api implements the HTTP client for the document-storage cloud:
// device registration, per-session bearer tokens, storage-host discovery,
// the document listing, and the three-phase upload protocol
// (reserve, blob transfer, metadata commit).
package api
