// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for choosing a front end.

package cli

import (
	"os"

	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Mode selects the front end that drives the session.
type Mode int

const (
	ModeTUI    Mode = iota // full-screen Bubble Tea console
	ModeLine               // liner prompt
	ModeScript             // stdin lines executed in order
)

func (m Mode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLine:
		return "line"
	case ModeScript:
		return "script"
	default:
		return "unknown"
	}
}

// SelectMode picks the front end: script mode when stdin is not a terminal,
// line mode when requested or stdout is not a terminal, else the TUI.
func SelectMode(forceLine, stdinTTY, stdoutTTY bool) Mode {
	switch {
	case !stdinTTY:
		return ModeScript
	case forceLine || !stdoutTTY:
		return ModeLine
	default:
		return ModeTUI
	}
}
