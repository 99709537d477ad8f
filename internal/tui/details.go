package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-awl-bridge/internal/adapter"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	historyWindow = 24 * time.Hour
	historyRows   = 10
	rawRows       = 40
)

type detailsModel struct {
	ctx    context.Context
	bridge adapter.BridgeAdapter

	zone       models.Zone
	details    models.ZoneDetails
	history    []models.ReadingRecord
	historyErr error
	raw        models.Reading
	showRaw    bool

	loading bool
	updated time.Time
	status  string
	lastErr error

	now func() time.Time
}

func newDetailsModel(ctx context.Context, bridge adapter.BridgeAdapter) detailsModel {
	return detailsModel{ctx: ctx, bridge: bridge, now: time.Now}
}

func (m detailsModel) Init() tea.Cmd {
	if m.zone.GWID == "" {
		return nil
	}
	return m.load()
}

func (m detailsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openZoneMsg:
		m = detailsModel{ctx: m.ctx, bridge: m.bridge, now: m.now, zone: msg.zone, loading: true}
		return m, m.load()
	case detailsLoadedMsg:
		if msg.zone != m.zone {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.details = msg.details
		m.history = msg.history
		m.historyErr = msg.historyErr
		m.updated = m.now()
		return m, nil
	case rawLoadedMsg:
		if msg.gwid != m.zone.GWID {
			return m, nil
		}
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.raw = msg.reading
		return m, nil
	case refreshMsg:
		return m.reload()
	case copiedMsg:
		m.status = "Copied " + msg.value
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageZones} }
		case key.Matches(msg, keys.refresh):
			return m.reload()
		case key.Matches(msg, keys.copy):
			return m, copyToClipboard(m.zone.GWID)
		case key.Matches(msg, keys.raw):
			m.showRaw = !m.showRaw
			if m.showRaw {
				return m, m.loadRaw()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m detailsModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location: %s\n", m.zone.Location)
	fmt.Fprintf(&b, "Gateway:  %s (%s)\n", m.zone.GWID, m.zone.SystemName)
	fmt.Fprintf(&b, "Zone:     %d\n\n", m.zone.ZoneID)

	switch {
	case m.loading && m.details == nil:
		b.WriteString("Loading...\n")
	case m.showRaw:
		b.WriteString(titleStyle.Render("Gateway registers") + "\n")
		b.WriteString(renderValues(m.raw, rawRows))
	default:
		b.WriteString(titleStyle.Render("Zone") + "\n")
		b.WriteString(renderValues(m.details, rawRows))
		b.WriteString("\n" + titleStyle.Render("History") + "\n")
		b.WriteString(m.renderHistory())
	}

	b.WriteString("\nUpdated: " + formatUpdated(m.updated))
	if m.status != "" {
		b.WriteString("\n" + okStyle.Render(m.status))
	}
	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+humanizeError(m.lastErr)))
	}

	title := titleStyle.Render("ZONE " + strings.ToUpper(m.zone.ZoneName))
	return renderPage(title, b.String(), "esc: back  x: registers  c: copy gwid  r: refresh  v: about  q: quit")
}

func (m detailsModel) renderHistory() string {
	if errors.Is(m.historyErr, adapter.ErrNotFound) {
		return helpStyle.Render("history is not recorded by this bridge") + "\n"
	}
	if m.historyErr != nil {
		return errorStyle.Render(humanizeError(m.historyErr)) + "\n"
	}
	if len(m.history) == 0 {
		return "-\n"
	}

	var b strings.Builder
	for _, r := range m.history {
		mode := r.ModeOfOperationName
		if mode == "" {
			mode = "-"
		}
		fmt.Fprintf(&b, "%s  room %-7s heat %-7s cool %-7s %s\n",
			r.RecordedAt.Local().Format(time.TimeOnly),
			formatFloat(r.RoomTemp, "°"),
			formatFloat(r.HeatingSetpoint, "°"),
			formatFloat(r.CoolingSetpoint, "°"),
			mode,
		)
	}
	return b.String()
}

func renderValues(values map[string]any, limit int) string {
	if len(values) == 0 {
		return "-\n"
	}

	names := sortedKeys(values)
	width := 0
	for _, k := range names {
		width = max(width, len(k))
	}

	var b strings.Builder
	for i, k := range names {
		if i == limit {
			b.WriteString(helpStyle.Render("... " + strconv.Itoa(len(names)-limit) + " more"))
			b.WriteString("\n")
			break
		}
		fmt.Fprintf(&b, "%-*s  %s\n", width, k, formatValue(values[k]))
	}
	return b.String()
}

func (m detailsModel) reload() (tea.Model, tea.Cmd) {
	if m.zone.GWID == "" || m.loading {
		return m, nil
	}
	m.loading = true
	if m.showRaw {
		return m, tea.Batch(m.load(), m.loadRaw())
	}
	return m, m.load()
}

func (m detailsModel) load() tea.Cmd {
	ctx, bridge, zone := m.ctx, m.bridge, m.zone
	since := m.now().Add(-historyWindow)

	return func() tea.Msg {
		msg := detailsLoadedMsg{zone: zone}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			details, err := bridge.ZoneDetails(gctx, zone.GWID, zone.ZoneID)
			msg.details = details
			return err
		})
		g.Go(func() error {
			msg.history, msg.historyErr = bridge.History(gctx, zone.GWID, since, historyRows)
			return nil
		})
		msg.err = g.Wait()

		return msg
	}
}

func (m detailsModel) loadRaw() tea.Cmd {
	ctx, bridge, gwid := m.ctx, m.bridge, m.zone.GWID
	return func() tea.Msg {
		reading, err := bridge.ReadGateway(ctx, gwid)
		return rawLoadedMsg{gwid: gwid, reading: reading, err: err}
	}
}
