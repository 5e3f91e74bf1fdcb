// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/fdick/Console/internal/console"
)

// DefaultTranscriptCapacity is the number of transcript lines kept when no
// capacity is configured.
const DefaultTranscriptCapacity = 300

// =============================================================================
// SCREEN STATE
// =============================================================================

// Line is one transcript entry.
type Line struct {
	Text    string
	Warning bool
}

// Screen is the state the session writes into. It implements console.View
// and commands.Transcript; the Bubble Tea model renders it. Bubble Tea
// copies models by value, so the session holds a *Screen and the model reads
// the same pointer.
type Screen struct {
	lines    []Line
	capacity int

	predictions []string
	cursor      int

	// Pending edit-field replacement, applied by the model after each event.
	edit      string
	editDirty bool

	focusRequested bool
	revision       int
}

// NewScreen returns an empty screen keeping at most capacity transcript lines.
func NewScreen(capacity int) *Screen {
	if capacity <= 0 {
		capacity = DefaultTranscriptCapacity
	}
	return &Screen{capacity: capacity, cursor: console.NoSelection}
}

// SetCapacity changes the transcript bound, dropping the oldest lines if needed.
func (s *Screen) SetCapacity(n int) {
	if n <= 0 {
		n = DefaultTranscriptCapacity
	}
	s.capacity = n
	s.trim()
}

// Capacity returns the transcript bound.
func (s *Screen) Capacity() int { return s.capacity }

// Lines returns a copy of the transcript, oldest first.
func (s *Screen) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Predictions returns the displayed candidate usages.
func (s *Screen) Predictions() []string { return s.predictions }

// Cursor returns the highlighted candidate, or console.NoSelection.
func (s *Screen) Cursor() int { return s.cursor }

// Revision increases with every transcript change.
func (s *Screen) Revision() int { return s.revision }

// TakeEdit returns a pending edit-field replacement, clearing it.
func (s *Screen) TakeEdit() (string, bool) {
	if !s.editDirty {
		return "", false
	}
	s.editDirty = false
	return s.edit, true
}

// TakeFocus reports and clears a pending focus request.
func (s *Screen) TakeFocus() bool {
	f := s.focusRequested
	s.focusRequested = false
	return f
}

// =============================================================================
// console.View
// =============================================================================

func (s *Screen) SetEditBuffer(text string) {
	s.edit = text
	s.editDirty = true
}

func (s *Screen) ClearEditBuffer() { s.SetEditBuffer("") }

func (s *Screen) SetPredictionList(items []string) {
	s.predictions = append(s.predictions[:0], items...)
}

func (s *Screen) SetPredictionCursor(index int) { s.cursor = index }

func (s *Screen) EmitLog(text string) { s.append(Line{Text: text}) }

func (s *Screen) EmitWarning(text string) { s.append(Line{Text: text, Warning: true}) }

func (s *Screen) RequestFocus() { s.focusRequested = true }

// =============================================================================
// commands.Transcript
// =============================================================================

func (s *Screen) Log(text string) { s.EmitLog(text) }

func (s *Screen) Warn(text string) { s.EmitWarning(text) }

func (s *Screen) Clear() {
	s.lines = s.lines[:0]
	s.revision++
}

func (s *Screen) append(l Line) {
	s.lines = append(s.lines, l)
	s.trim()
	s.revision++
}

func (s *Screen) trim() {
	if over := len(s.lines) - s.capacity; over > 0 {
		s.lines = append(s.lines[:0], s.lines[over:]...)
	}
}
