// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// line.go - Line-mode front end on liner.
//
// Keys:
//   Tab       complete the command id (session.Complete)
//   Up/Down   liner's own in-memory recall list, fed with lines the session
//             recorded; nothing is written to disk
//   Ctrl+C    abandon the current line
//   Ctrl+D    exit

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/fdick/Console/internal/console"
)

// =============================================================================
// EXECUTION
// =============================================================================

// Execute feeds one line through the session as typed text followed by
// Enter. It reports whether the session recorded the line in its history.
func Execute(s *console.Session, line string) bool {
	before := s.History()

	s.InputChanged(line)
	s.Submit()

	after := s.History()
	if len(after) != len(before) {
		return true
	}
	return len(after) > 0 && after[0] != before[0]
}

// =============================================================================
// LINE REPL
// =============================================================================

// LineOptions configures a LineREPL.
type LineOptions struct {
	Prompt string

	// Done is polled after each line; returning true ends Run
	Done func() bool

	Out io.Writer
}

// LineREPL is an interactive prompt driving a session.
type LineREPL struct {
	line    *liner.State
	session *console.Session
	opts    LineOptions
}

// NewLineREPL takes over the terminal with liner. Call Close when done.
func NewLineREPL(session *console.Session, opts LineOptions) *LineREPL {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(session.Complete)

	return &LineREPL{line: line, session: session, opts: opts}
}

// Run reads lines until EOF, cancellation or Done.
func (r *LineREPL) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		input, err := r.line.Prompt(r.opts.Prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.opts.Out)
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		if Execute(r.session, input) {
			r.line.AppendHistory(input)
		}
		if r.opts.Done != nil && r.opts.Done() {
			return nil
		}
	}
}

// Close restores the terminal.
func (r *LineREPL) Close() error {
	return r.line.Close()
}
