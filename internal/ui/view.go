// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// =============================================================================
// RENDERING
// =============================================================================

func (m Model) render() string {
	if m.hidden {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.theme.ShortcutDesc.Render("Console hidden. Press F1 to show."),
		)
	}

	parts := []string{m.renderHeader(), m.viewport.View()}
	if preds := m.renderPredictions(); preds != "" {
		parts = append(parts, preds)
	}
	parts = append(parts, m.renderInput(), m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	brand := m.theme.HeaderBrand.Render(m.title)
	info := fmt.Sprintf("%d commands", m.session.Registry().Len())
	return m.theme.Header.Render(brand + "  " + info)
}

func (m Model) renderTranscript() string {
	lines := m.screen.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		if l.Warning {
			out[i] = m.theme.RenderWarning(l.Text)
		} else {
			out[i] = m.theme.LogLine.Render(l.Text)
		}
	}
	return m.theme.Transcript.Render(strings.Join(out, "\n"))
}

// renderPredictions draws the candidate list as one column padded to the
// widest usage, so the selection highlight has an even right edge.
func (m Model) renderPredictions() string {
	items := m.screen.Predictions()
	if len(items) == 0 {
		return ""
	}
	return m.theme.PredictionBox.Render(strings.Join(m.padColumn(items, m.screen.Cursor()), "\n"))
}

// padColumn pads every item to the display width of the widest one and
// styles the item at cursor as selected.
func (m Model) padColumn(items []string, cursor int) []string {
	width := 0
	for _, it := range items {
		if w := runewidth.StringWidth(it); w > width {
			width = w
		}
	}

	out := make([]string, len(items))
	for i, it := range items {
		padded := runewidth.FillRight(it, width)
		if i == cursor {
			out[i] = m.theme.PredictionSelected.Render(padded)
		} else {
			out[i] = m.theme.PredictionItem.Render(padded)
		}
	}
	return out
}

func (m Model) renderInput() string {
	line := m.input.View()
	if hint := m.suggestionTail(); hint != "" {
		line += m.theme.Suggestion.Render(hint)
	}
	return m.theme.InputContainer.Render(line)
}

// suggestionTail returns the part of the top suggestion's usage not yet typed.
func (m Model) suggestionTail() string {
	buf := m.session.Buffer()
	top := m.session.TopSuggestion()
	if buf == "" || !strings.HasPrefix(top, buf) {
		return ""
	}
	return strings.TrimPrefix(top, buf)
}

func (m Model) renderStatusBar() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}
