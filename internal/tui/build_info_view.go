// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-awl-bridge/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, bridgeVersion string) string {
	var b strings.Builder

	b.WriteString("Application: awl-monitor\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit))
	b.WriteString("\n\n")
	b.WriteString("Bridge version: ")
	b.WriteString(valueOrNA(bridgeVersion))

	return renderPage(titleStyle.Render("ABOUT"), b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
