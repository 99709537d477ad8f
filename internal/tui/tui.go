package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-awl-bridge/internal/adapter"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/models"
)

var errNilBridge = errors.New("bridge adapter is nil")

// TUI is the terminal monitor of a running bridge.
type TUI struct {
	bridge          adapter.BridgeAdapter
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo
	options         []tea.ProgramOption

	logger *logger.Logger
}

// New constructs the monitor. Pages are refreshed every refreshInterval; zero
// disables the automatic refresh.
func New(bridge adapter.BridgeAdapter, refreshInterval time.Duration, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if bridge == nil {
		return nil, errNilBridge
	}
	return &TUI{
		bridge:          bridge,
		refreshInterval: refreshInterval,
		buildInfo:       buildInfo,
		options:         []tea.ProgramOption{tea.WithAltScreen()},
		logger:          log,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. Quitting returns
// [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.bridge, map[string]tea.Model{
		pageZones:   newZonesModel(ctx, t.bridge),
		pageDetails: newDetailsModel(ctx, t.bridge),
	}, pageZones, t.refreshInterval, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			t.logger.Debug().Str("func", "*TUI.Run").Msg("monitor stopped by context")
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
