// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/fdick/Console/internal/ui/styles"
)

// =============================================================================
// PRINTER
// =============================================================================

// Printer is the console.View and commands.Transcript for line and script
// modes. Transcript lines go straight to the writer; edit-field and
// prediction updates have nothing to draw since liner owns the prompt.
type Printer struct {
	out   io.Writer
	theme *styles.Theme

	// clearScreen is false when out is not a terminal
	clearScreen bool
}

// NewPrinter returns a printer writing to w. When clearScreen is set the
// clear command erases the terminal; otherwise it prints nothing.
func NewPrinter(w io.Writer, theme *styles.Theme, clearScreen bool) *Printer {
	return &Printer{out: w, theme: theme, clearScreen: clearScreen}
}

func (p *Printer) SetEditBuffer(string)       {}
func (p *Printer) ClearEditBuffer()           {}
func (p *Printer) SetPredictionList([]string) {}
func (p *Printer) SetPredictionCursor(int)    {}
func (p *Printer) RequestFocus()              {}

func (p *Printer) EmitLog(text string) {
	fmt.Fprintln(p.out, p.theme.LogLine.Render(text))
}

func (p *Printer) EmitWarning(text string) {
	fmt.Fprintln(p.out, p.theme.RenderWarning(text))
}

func (p *Printer) Log(text string)  { p.EmitLog(text) }
func (p *Printer) Warn(text string) { p.EmitWarning(text) }

func (p *Printer) Clear() {
	if p.clearScreen {
		termenv.NewOutput(p.out).ClearScreen()
	}
}
