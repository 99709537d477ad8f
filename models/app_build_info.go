// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries the build metadata injected by linker flags. It is
// printed at start-up and served by GET /api/version/.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values become "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(buildVersion),
		Date:    orNotAvailable(buildDate),
		Commit:  orNotAvailable(buildCommit),
	}
}

// HasVersion reports whether a version was injected at build time.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version != "" && a.Version != notAvailable
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
