package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ErrNoUI is returned by [NewApp] when no front end is supplied.
var ErrNoUI = errors.New("client: ui is required")

// App runs the vault front end for one process lifetime.
type App struct {
	ui     Client
	logger *logger.Logger
}

func NewApp(ui Client, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, logger: log}, nil
}

// Run blocks until the front end returns. Cancellation of ctx, for example by
// SIGINT, counts as a normal exit.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil:
		log.Info().Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info().Msg("client interrupted")
		return nil
	default:
		a.logger.Error().Err(err).Msg("client stopped with error")
		return fmt.Errorf("client run: %w", err)
	}
}
