// Package cli wires the inkdrop application together: config handling,
// interactive prompts, the render step, and the upload service.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/dmitrijs2005/inkdrop/internal/client/api"
	"github.com/dmitrijs2005/inkdrop/internal/client/config"
	"github.com/dmitrijs2005/inkdrop/internal/client/render"
	"github.com/dmitrijs2005/inkdrop/internal/client/services"
	"github.com/dmitrijs2005/inkdrop/internal/logging"
)

type App struct {
	settings *config.Settings
	service  services.UploadService
	renderer render.Renderer
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp builds the production application: an HTTP API client against the
// configured endpoints and a headless-Chrome renderer.
func NewApp(settings *config.Settings, log logging.Logger) *App {
	client := api.NewHTTPClient(settings.AuthHost, settings.DiscoveryURL)
	return &App{
		settings: settings,
		service:  services.NewUploadService(client, log),
		renderer: render.NewChromeRenderer(settings.RenderTimeout),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// ValidatePuzzleURL checks the positional argument before the run starts.
func ValidatePuzzleURL(raw string) error {
	if err := validation.Validate(raw, validation.Required, is.URL); err != nil {
		return fmt.Errorf("invalid puzzle URL %q: %w", raw, err)
	}
	return nil
}

// Run executes one full upload: ensure a device token exists, open a
// session, make sure an upload directory is chosen, render the puzzle page
// to PDF, and push it through the upload protocol. The config value is
// loaded once, threaded through the steps that change it, and saved after
// each change.
func (a *App) Run(ctx context.Context, puzzleURL string) error {
	if err := ValidatePuzzleURL(puzzleURL); err != nil {
		return err
	}

	cfg, ok := config.Load(a.settings.ConfigPath)
	if !ok {
		a.log.Debug(ctx, "no usable config, starting fresh", "path", a.settings.ConfigPath)
	}

	cfg, err := a.ensureDeviceToken(ctx, cfg)
	if err != nil {
		return err
	}

	sess, err := a.service.NewSession(ctx, cfg.DeviceToken)
	if err != nil {
		return err
	}

	cfg, err = a.ensureParentDirectory(ctx, cfg, sess)
	if err != nil {
		return err
	}

	a.log.Info(ctx, "rendering puzzle page", "url", puzzleURL)
	title, pdf, err := a.renderer.Render(ctx, puzzleURL)
	if err != nil {
		return err
	}

	id, err := a.service.Upload(ctx, sess, title, pdf, cfg.Parent)
	if err != nil {
		return err
	}

	parentPath := "/"
	if cfg.Parent != nil {
		parentPath = cfg.Parent.Path
	}
	fmt.Fprintf(a.out, "Uploaded %q to %s (document %s)\n", title, parentPath, id)
	return nil
}

// ensureDeviceToken runs the one-time registration when the config has no
// device token yet, persisting the token before returning.
func (a *App) ensureDeviceToken(ctx context.Context, cfg *config.Config) (*config.Config, error) {
	if cfg.DeviceToken != "" {
		return cfg, nil
	}

	code, err := GetOneTimeCode(a.reader, a.out)
	if err != nil {
		return nil, err
	}

	token, err := a.service.RegisterDevice(ctx, code)
	if err != nil {
		return nil, err
	}

	cfg.DeviceToken = token
	if err := config.Save(a.settings.ConfigPath, cfg); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	return cfg, nil
}

// ensureParentDirectory makes sure cfg carries an upload directory. A saved
// directory is offered for reuse; picking a new one fetches the remote
// hierarchy and persists the choice.
func (a *App) ensureParentDirectory(ctx context.Context, cfg *config.Config, sess *services.Session) (*config.Config, error) {
	if cfg.Parent != nil {
		keep, err := GetYesNo(a.reader, fmt.Sprintf("Upload to %s?", cfg.Parent.Path), true, a.out)
		if err != nil {
			return nil, err
		}
		if keep {
			return cfg, nil
		}
	}

	dirs, err := a.service.Directories(ctx, sess)
	if err != nil {
		return nil, err
	}

	dir, err := PickDirectory(a.reader, dirs, a.out)
	if err != nil {
		return nil, err
	}

	cfg.Parent = dir
	if err := config.Save(a.settings.ConfigPath, cfg); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	return cfg, nil
}
