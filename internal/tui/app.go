package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-awl-bridge/internal/adapter"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	pageZones   = "zones"
	pageDetails = "details"
)

type bridgeVersionMsg struct {
	version string
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global quit and the build info window
// 3) drives the refresh ticker
// 4) handles NavigateTo messages
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	bridge adapter.BridgeAdapter

	pages   map[string]tea.Model
	current string

	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo
	bridgeVersion   string

	showBuildInfo bool
	overlay       *errorOverlayModel
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, bridge adapter.BridgeAdapter, pages map[string]tea.Model, startPage string,
	refreshInterval time.Duration, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:             ctx,
		bridge:          bridge,
		pages:           pages,
		current:         startPage,
		refreshInterval: refreshInterval,
		buildInfo:       buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.fetchVersion(), r.tick()}
	if page, ok := r.pages[r.current]; ok {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case r.overlay != nil:
			if key.Matches(keyMsg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.esc, keys.info) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(keyMsg, keys.info):
			r.showBuildInfo = true
			return r, nil
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tickMsg:
		updated, cmd := r.delegate(refreshMsg{})
		return updated, tea.Batch(cmd, r.tick())
	case bridgeVersionMsg:
		r.bridgeVersion = msg.version
		return r, nil
	case errorMsg:
		r.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		return r, nil
	case NavigateTo:
		page, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, page.Init()
	}

	return r.delegate(msg)
}

func (r RootModel) View() string {
	if r.overlay != nil {
		return appStyle.Render(r.overlay.View())
	}
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.bridgeVersion))
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("awl-monitor", "", "")
	}
	return appStyle.Render(page.View())
}

func (r RootModel) delegate(msg tea.Msg) (RootModel, tea.Cmd) {
	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) tick() tea.Cmd {
	if r.refreshInterval <= 0 {
		return nil
	}
	return tea.Tick(r.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (r RootModel) fetchVersion() tea.Cmd {
	ctx, bridge := r.ctx, r.bridge
	return func() tea.Msg {
		version, err := bridge.Version(ctx)
		if err != nil {
			return nil
		}
		return bridgeVersionMsg{version: version}
	}
}
