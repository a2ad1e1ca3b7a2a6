package api

import (
	"time"

	"github.com/dmitrijs2005/inkdrop/internal/client/hierarchy"
)

// Document is the metadata record committed in the final upload phase.
// Unknown extra fields in server responses are ignored; the service in turn
// ignores fields it does not know.
type Document struct {
	ID             string `json:"ID"`
	VisibleName    string `json:"VisibleName"`
	Parent         string `json:"Parent"`
	Type           string `json:"Type"`
	Version        int    `json:"Version"`
	ModifiedClient string `json:"ModifiedClient"`
	LastModified   string `json:"lastModified"`
	Deleted        bool   `json:"deleted"`
	Pinned         bool   `json:"pinned"`
	Synced         bool   `json:"synced"`
}

// NewDocument builds the commit record for a fresh upload of visibleName
// into the directory parentID (empty = root). The caller supplies the
// client-generated document ID.
func NewDocument(id, visibleName, parentID string) Document {
	now := time.Now().UTC().Format(time.RFC3339)
	return Document{
		ID:             id,
		VisibleName:    visibleName,
		Parent:         parentID,
		Type:           hierarchy.DocumentType,
		Version:        1,
		ModifiedClient: now,
		LastModified:   now,
		Synced:         true,
	}
}

// uploadRequest is the single element of the reserve-phase payload.
type uploadRequest struct {
	ID      string `json:"ID"`
	Type    string `json:"Type"`
	Version int    `json:"Version"`
}

// uploadResponse is the per-document result of the reserve and commit
// phases. BlobURLPut is only populated by the reserve phase.
type uploadResponse struct {
	ID         string `json:"ID"`
	Version    int    `json:"Version"`
	Message    string `json:"Message"`
	Success    bool   `json:"Success"`
	BlobURLPut string `json:"BlobURLPut"`
}

// discoveryResponse is the body of the service-manager discovery endpoint.
type discoveryResponse struct {
	Status string `json:"Status"`
	Host   string `json:"Host"`
}

// deviceRegistration is the payload of the one-time-code exchange.
type deviceRegistration struct {
	Code       string `json:"code"`
	DeviceDesc string `json:"deviceDesc"`
	DeviceID   string `json:"deviceID"`
}
