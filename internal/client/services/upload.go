// Package services contains the application service of the inkdrop client:
// session setup against the cloud (token exchange, host discovery) and the
// end-to-end document upload.
package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/inkdrop/internal/client/api"
	"github.com/dmitrijs2005/inkdrop/internal/client/hierarchy"
	"github.com/dmitrijs2005/inkdrop/internal/client/packaging"
	"github.com/dmitrijs2005/inkdrop/internal/common"
	"github.com/dmitrijs2005/inkdrop/internal/logging"
)

// Session holds the per-run credentials: the short-lived bearer token and
// the resolved storage host. Neither is persisted.
type Session struct {
	Token       string
	StorageHost string
}

// UploadService drives the cloud side of a run.
//
// Contract:
//   - RegisterDevice: one-time code → long-lived device token.
//   - NewSession: device token → bearer token + storage host, once per run.
//   - Directories: sorted remote folder list with the root injected.
//   - Upload: package the PDF and run the three-phase upload; returns the
//     generated document ID.
type UploadService interface {
	RegisterDevice(ctx context.Context, code string) (string, error)
	NewSession(ctx context.Context, deviceToken string) (*Session, error)
	Directories(ctx context.Context, sess *Session) ([]hierarchy.Directory, error)
	Upload(ctx context.Context, sess *Session, title string, pdf []byte, parent *hierarchy.Directory) (string, error)
}

type uploadService struct {
	client api.Client
	log    logging.Logger
}

// NewUploadService constructs an UploadService bound to the given API
// client.
func NewUploadService(client api.Client, log logging.Logger) UploadService {
	return &uploadService{client: client, log: log}
}

func (s *uploadService) RegisterDevice(ctx context.Context, code string) (string, error) {
	token, err := s.client.RegisterDevice(ctx, code)
	if err != nil {
		return "", fmt.Errorf("registering device: %w", err)
	}
	s.log.Info(ctx, "device registered")
	return token, nil
}

// NewSession exchanges the device token for a session bearer token and
// resolves the storage host. Fails with common.ErrNoDeviceToken when the
// installation has not been registered yet.
func (s *uploadService) NewSession(ctx context.Context, deviceToken string) (*Session, error) {
	if deviceToken == "" {
		return nil, common.ErrNoDeviceToken
	}

	token, err := s.client.NewUserToken(ctx, deviceToken)
	if err != nil {
		return nil, fmt.Errorf("refreshing session token: %w", err)
	}
	s.logSessionExpiry(ctx, token)

	host, err := s.client.DiscoverStorageHost(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovering storage host: %w", err)
	}
	s.log.Debug(ctx, "resolved storage host", "host", host)

	return &Session{Token: token, StorageHost: host}, nil
}

// logSessionExpiry peeks into the bearer token, which the service issues as
// a JWT, purely for diagnostics. The signature is not verified here; an
// opaque token is fine too.
func (s *uploadService) logSessionExpiry(ctx context.Context, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		s.log.Debug(ctx, "session token is not a parsable JWT", "error", err)
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	s.log.Debug(ctx, "session token obtained", "expires", exp.Time)
}

func (s *uploadService) Directories(ctx context.Context, sess *Session) ([]hierarchy.Directory, error) {
	entries, err := s.client.ListDocuments(ctx, sess.Token, sess.StorageHost)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	dirs, err := hierarchy.Build(entries)
	if err != nil {
		return nil, err
	}
	return hierarchy.Sorted(dirs), nil
}

func (s *uploadService) Upload(ctx context.Context, sess *Session, title string, pdf []byte, parent *hierarchy.Directory) (string, error) {
	if title == "" {
		title = "puzzle"
	}

	parentID := ""
	parentPath := hierarchy.Root.Path
	if parent != nil {
		parentID = parent.ID
		parentPath = parent.Path
	}

	id := uuid.NewString()
	log := s.log.With("id", id)

	pkg, err := packaging.Build(id, pdf)
	if err != nil {
		return "", fmt.Errorf("packaging document: %w", err)
	}

	log.Info(ctx, "uploading document", "name", title, "parent", parentPath, "size", len(pkg))

	doc := api.NewDocument(id, title, parentID)
	if err := s.client.Upload(ctx, sess.Token, sess.StorageHost, doc, pkg); err != nil {
		return "", err
	}

	log.Info(ctx, "upload complete")
	return id, nil
}
