package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-awl-bridge/internal/adapter"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	zonesTableHeight = 12
	statusTTL        = 2 * time.Second
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type zonesModel struct {
	ctx    context.Context
	bridge adapter.BridgeAdapter

	table   table.Model
	spinner spinner.Model
	zones   []models.Zone
	health  models.SessionStatus

	loading bool
	updated time.Time
	status  string
	lastErr error

	now func() time.Time
}

func newZonesModel(ctx context.Context, bridge adapter.BridgeAdapter) zonesModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Location", Width: 16},
			{Title: "Gateway", Width: 14},
			{Title: "System", Width: 16},
			{Title: "Zone", Width: 4},
			{Title: "Name", Width: 18},
		}),
		table.WithFocused(true),
		table.WithHeight(zonesTableHeight),
	)
	t.SetStyles(tableStyles())

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return zonesModel{
		ctx:     ctx,
		bridge:  bridge,
		table:   t,
		spinner: s,
		loading: true,
		now:     time.Now,
	}
}

func (m zonesModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick)
}

func (m zonesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case zonesLoadedMsg:
		m.loading = false
		m.health = msg.health
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.updated = m.now()
		m.setZones(msg.zones)
		return m, nil
	case refreshMsg:
		return m.reload()
	case copiedMsg:
		m.status = "Copied " + msg.value
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.refresh):
			return m.reload()
		case key.Matches(msg, keys.enter):
			zone, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return NavigateTo{Page: pageDetails, Payload: openZoneMsg{zone: zone}}
			}
		case key.Matches(msg, keys.copy):
			zone, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, copyToClipboard(zone.GWID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m zonesModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHealth())
	b.WriteString("\n\n")

	if m.loading && len(m.zones) == 0 {
		b.WriteString(m.spinner.View() + " Loading...")
	} else if len(m.zones) == 0 {
		b.WriteString("No zones")
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\nUpdated: " + formatUpdated(m.updated))
	if m.status != "" {
		b.WriteString("\n" + okStyle.Render(m.status))
	}
	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+humanizeError(m.lastErr)))
	}

	title := titleStyle.Render("AWL ZONES")
	if m.loading {
		title += "  " + m.spinner.View()
	}
	return renderPage(title, b.String(), "enter: details  c: copy gwid  r: refresh  v: about  q: quit")
}

func (m zonesModel) renderHealth() string {
	state := string(m.health.State)
	if state == "" {
		return "Bridge: " + warnStyle.Render("unknown")
	}

	line := "Bridge: "
	if m.health.State == models.SessionConnected {
		line += okStyle.Render(state)
	} else {
		line += warnStyle.Render(state)
	}
	if !m.health.ConnectedAt.IsZero() {
		line += "  since " + m.health.ConnectedAt.Local().Format(time.DateTime)
	}
	if m.health.Reconnects > 0 {
		line += "  reconnects " + strconv.Itoa(m.health.Reconnects)
	}
	if m.health.LastError != "" {
		line += "\n" + errorStyle.Render(fitText(m.health.LastError, 60))
	}
	return line
}

func (m zonesModel) reload() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.load(), m.spinner.Tick)
}

func (m *zonesModel) setZones(zones []models.Zone) {
	m.zones = zones

	rows := make([]table.Row, 0, len(zones))
	for _, z := range zones {
		rows = append(rows, table.Row{
			z.Location,
			z.GWID,
			z.SystemName,
			strconv.Itoa(z.ZoneID),
			z.ZoneName,
		})
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); len(rows) > 0 && (c < 0 || c >= len(rows)) {
		m.table.SetCursor(min(max(c, 0), len(rows)-1))
	}
}

func (m zonesModel) selected() (models.Zone, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.zones) {
		return models.Zone{}, false
	}
	return m.zones[idx], true
}

func (m zonesModel) load() tea.Cmd {
	ctx, bridge := m.ctx, m.bridge
	return func() tea.Msg {
		// a disconnected bridge still reports its state
		health, err := bridge.Health(ctx)
		if err != nil && !errors.Is(err, adapter.ErrServiceUnavailable) {
			health = models.SessionStatus{}
		}

		zones, err := bridge.ListZones(ctx)
		return zonesLoadedMsg{zones: zones, health: health, err: err}
	}
}

func copyToClipboard(value string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(value); err != nil {
			return errorMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{value: value}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
