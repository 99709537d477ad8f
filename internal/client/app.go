package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/tui"
)

var errNoMonitor = errors.New("monitor is not set")

// Monitor is the interactive part of the client.
type Monitor interface {
	Run(ctx context.Context) error
}

// App runs the terminal monitor until the user quits.
type App struct {
	monitor Monitor
	logger  *logger.Logger
}

func NewApp(monitor Monitor, log *logger.Logger) (*App, error) {
	if monitor == nil {
		return nil, errNoMonitor
	}
	return &App{monitor: monitor, logger: log}, nil
}

// Run implements [Client]. Leaving the monitor is not an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("monitor started")

	err := a.monitor.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("monitor closed by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("monitor run: %w", err)
	}

	a.logger.Info().Msg("monitor stopped")
	return nil
}
