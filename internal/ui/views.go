package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/deadair/internal/config"
	"github.com/linuxmatters/deadair/internal/scanner"
)

var (
	silentIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("🔇")
	errorIcon  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
)

// renderScanView renders the main scanning view
func renderScanView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	b.WriteString(renderProgress(m))
	b.WriteString("\n\n")

	b.WriteString(renderTallies(m))

	if len(m.Recent) > 0 {
		b.WriteString("\n\n")
		b.WriteString(renderRecent(m))
	}

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#A40000")).
		Render("Deadair 📻 - Silent WAV Auditor")

	modeNote := "audit only, nothing will be deleted"
	if m.Mode == config.ModeDelete {
		modeNote = "DELETE mode, silent files will be removed"
	}
	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Scanning %d file(s) under %s (%s)", m.TotalFiles, m.Root, modeNote))

	params := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(fmt.Sprintf("%d chunks of %ds per file, threshold %.6g", m.Samples, m.Interval, m.Threshold))

	return title + "\n" + subtitle + "\n" + params
}

// renderProgress renders the progress bar box with the current file
func renderProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#A40000")).
		Padding(0, 1).
		Width(64)

	var content strings.Builder

	progress := 0.0
	if m.TotalFiles > 0 {
		progress = float64(m.Scanned) / float64(m.TotalFiles)
	}
	content.WriteString(renderProgressBar(progress, 44))
	content.WriteString(fmt.Sprintf("  %d/%d\n", m.Scanned, m.TotalFiles))

	if m.CurrentPath != "" && !m.Done {
		content.WriteString(fmt.Sprintf("⚙ %s", filepath.Base(m.CurrentPath)))
	}

	return box.Render(content.String())
}

// renderProgressBar renders a progress bar
func renderProgressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	percentage := int(progress * 100)

	return fmt.Sprintf("%s %d%%", bar, percentage)
}

// renderTallies renders the running decision counts
func renderTallies(m Model) string {
	keep := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).
		Render(fmt.Sprintf("✓ kept %d", m.Kept))
	silent := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).
		Render(fmt.Sprintf("🔇 silent %d", m.Silent))
	errors := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).
		Render(fmt.Sprintf("✗ errors %d", m.Errors))

	return fmt.Sprintf(" %s   %s   %s", keep, silent, errors)
}

// renderRecent renders the latest notable outcomes (silent candidates and
// errors); kept files are the common case and stay off the list
func renderRecent(m Model) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render("Recent findings:"))
	b.WriteString("\n")

	for _, o := range m.Recent {
		icon := silentIcon
		note := fmt.Sprintf("peak %.6g", o.MaxAbsSeen)
		if o.Decision == scanner.DecisionError {
			icon = errorIcon
			note = o.Detail
		}
		b.WriteString(fmt.Sprintf(" %s %s\n   %s\n", icon, filepath.Base(o.Path), note))
	}

	return strings.TrimRight(b.String(), "\n")
}
