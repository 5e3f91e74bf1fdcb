// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the devconsole TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. The Theme binds them to a renderer so that the ui.theme and
ui.no_color settings apply without touching lipgloss globals.

# Color System (colors.go)

  - Purple - Selected prediction and header brand
  - Cyan - Prompt and shortcut keys
  - Amber - Warnings
  - TextPrimary, TextSecondary, TextMuted - Text hierarchy

# Theme System (theme.go)

	theme := styles.NewTheme(cfg.UI)
	line := theme.LogLine.Render("Hello")
	warn := theme.RenderWarning("Command is not recognized <x>")

With no_color set, the renderer uses the ASCII profile and warnings keep the
[!] indicator.
*/
package styles
