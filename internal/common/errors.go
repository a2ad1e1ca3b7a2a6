// Package common defines shared constants and sentinel errors used across
// the inkdrop client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Auth/bootstrap errors.
	ErrNoDeviceToken  = errors.New("no device token")
	ErrNotInteractive = errors.New("interactive terminal required")

	// Listing errors.
	ErrEntryNotFound = errors.New("entry not found")
)
