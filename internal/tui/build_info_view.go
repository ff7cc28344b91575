// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/axle-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, endpoints []string) string {
	var b strings.Builder

	b.WriteString("Application: axle client\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	for _, e := range endpoints {
		b.WriteString("\n")
		b.WriteString(e)
	}

	return renderPage(titleStyle.Render("ABOUT"), b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
