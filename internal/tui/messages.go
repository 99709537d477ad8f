package tui

import (
	"time"

	"github.com/MKhiriev/go-awl-bridge/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

type tickMsg time.Time

// refreshMsg asks the active page to reload its data.
type refreshMsg struct{}

type zonesLoadedMsg struct {
	zones  []models.Zone
	health models.SessionStatus
	err    error
}

type openZoneMsg struct {
	zone models.Zone
}

type detailsLoadedMsg struct {
	zone    models.Zone
	details models.ZoneDetails
	history []models.ReadingRecord
	// historyErr is kept apart so a bridge without storage still shows details.
	historyErr error
	err        error
}

type rawLoadedMsg struct {
	gwid    string
	reading models.Reading
	err     error
}

type copiedMsg struct {
	value string
}

type errorMsg struct {
	err error
}

type clearStatusMsg struct{}
