// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-resin-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, version string) string {
	var b strings.Builder

	b.WriteString(field("Application:", "go-resin-keeper"))
	b.WriteString(field("Version:", version))
	b.WriteString(field("Build version:", info.BuildVersion()))
	b.WriteString(field("Build date:", info.BuildDate()))
	b.WriteString(field("Build commit:", strings.TrimSpace(info.BuildCommit())))

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}
