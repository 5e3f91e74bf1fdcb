// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fdick/Console/internal/config"
)

// Theme holds all the styled components for the console.
// Styles come from one renderer, so they follow that output's color profile
// and background.
type Theme struct {
	renderer *lipgloss.Renderer

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderBrand lipgloss.Style

	// ==========================================================================
	// TRANSCRIPT STYLES
	// ==========================================================================

	Transcript  lipgloss.Style
	LogLine     lipgloss.Style
	WarningLine lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	Suggestion       lipgloss.Style

	// ==========================================================================
	// PREDICTION LIST STYLES
	// ==========================================================================

	PredictionBox      lipgloss.Style
	PredictionItem     lipgloss.Style
	PredictionSelected lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a theme for stdout honoring the theme and no_color settings.
func NewTheme(ui config.UIConfig) *Theme {
	return NewThemeFor(os.Stdout, ui)
}

// NewThemeFor creates a theme rendering for w.
func NewThemeFor(w io.Writer, ui config.UIConfig) *Theme {
	r := lipgloss.NewRenderer(w)

	if ui.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	// "auto" keeps the renderer's own background detection.
	switch ui.Theme {
	case "dark":
		r.SetHasDarkBackground(true)
	case "light":
		r.SetHasDarkBackground(false)
	}

	t := &Theme{renderer: r}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	r := t.renderer

	// Header
	t.Header = r.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderBrand = r.NewStyle().
		Bold(true).
		Foreground(Purple)

	// Transcript
	t.Transcript = r.NewStyle().
		Padding(0, 1)

	t.LogLine = r.NewStyle().
		Foreground(TextPrimary)

	t.WarningLine = r.NewStyle().
		Foreground(Amber).
		Bold(true)

	// Input area
	t.InputContainer = r.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = r.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = r.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = r.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Suggestion = r.NewStyle().
		Foreground(TextMuted)

	// Prediction list
	t.PredictionBox = r.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.PredictionItem = r.NewStyle().
		Foreground(TextSecondary)

	t.PredictionSelected = r.NewStyle().
		Foreground(Purple).
		Background(SelectionBg).
		Bold(true)

	// Status bar
	t.StatusBar = r.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = r.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = r.NewStyle().
		Foreground(TextMuted)
}

// RenderWarning renders a transcript warning with its indicator so it stays
// distinct when color is off.
func (t *Theme) RenderWarning(message string) string {
	return t.WarningLine.Render(WarningIndicator + " " + message)
}
