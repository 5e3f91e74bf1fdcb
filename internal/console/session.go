// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the console session state machine.
package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fdick/Console/internal/commands"
	"github.com/fdick/Console/internal/history"
)

// NotRecognizedFormat is the warning shown when a submitted line fails.
const NotRecognizedFormat = "Command is not recognized <%s>"

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Session. The zero value is usable.
type Options struct {
	// Commands are registered after the built-ins, in order
	Commands []*commands.Command

	// Context is handed to every handler; owned by the host
	Context *commands.Context

	// HistoryCapacity bounds the recall list (default history.DefaultCapacity)
	HistoryCapacity int

	// MaxPredictions bounds the candidate list (default commands.DefaultMaxPredictions)
	MaxPredictions int

	// Logger receives diagnostics; nil discards them
	Logger *slog.Logger
}

// =============================================================================
// SESSION
// =============================================================================

// Session holds the edit buffer, the prediction list and cursor and the
// history cursor, and turns view events into registry lookups, dispatches
// and view updates. It is not safe for concurrent use: the front end must
// deliver events from a single goroutine.
type Session struct {
	id     string
	view   View
	ctx    *commands.Context
	logger *slog.Logger

	registry   *commands.Registry
	dispatcher *commands.Dispatcher
	predictor  *commands.Predictor
	history    *history.Cache

	buffer     string
	prediction commands.Prediction
	selected   int
	historyPos int
}

// New builds the registry (built-ins first, then opts.Commands), seals it
// and returns a session driving view.
func New(view View, opts Options) (*Session, error) {
	if view == nil {
		return nil, errors.New("console: nil view")
	}

	registry := commands.NewRegistry()
	if err := commands.RegisterBuiltins(registry); err != nil {
		return nil, fmt.Errorf("register built-in commands: %w", err)
	}
	for _, cmd := range opts.Commands {
		if err := registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("register command: %w", err)
		}
	}
	registry.Seal()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	id := uuid.NewString()
	s := &Session{
		id:         id,
		view:       view,
		ctx:        opts.Context,
		logger:     logger.With("session", id),
		registry:   registry,
		dispatcher: commands.NewDispatcher(registry),
		predictor:  commands.NewPredictor(registry, opts.MaxPredictions),
		history:    history.NewCache(opts.HistoryCapacity),
		selected:   NoSelection,
	}

	s.logger.Info("console session started",
		"commands", registry.Len(),
		"history_capacity", s.history.Capacity(),
		"max_predictions", s.predictor.MaxPredictions())
	return s, nil
}

// Handle applies one event.
func (s *Session) Handle(ev Event) {
	switch e := ev.(type) {
	case InputChanged:
		s.InputChanged(e.Text)
	case Submit:
		s.Submit()
	case HistoryPrev:
		s.HistoryPrev()
	case PredictionNext:
		s.PredictionNext()
	case CompleteRequest:
		s.CompleteRequest()
	}
}

// =============================================================================
// EVENT HANDLERS
// =============================================================================

// InputChanged replaces the buffer, drops the selection and recomputes the
// prediction list.
func (s *Session) InputChanged(text string) {
	s.buffer = text
	s.refresh()
}

// PredictionNext moves the selection to the next candidate, wrapping to the
// first. The first press selects candidate 0.
func (s *Session) PredictionNext() {
	n := len(s.prediction.Candidates)
	if n == 0 {
		return
	}
	s.selected = (s.selected + 1) % n
	s.view.SetPredictionCursor(s.selected)
}

// HistoryPrev loads the history entry under the history cursor into the
// buffer and advances the cursor, wrapping after the oldest reachable entry.
func (s *Session) HistoryPrev() {
	span := s.history.Span()
	if span == 0 {
		return
	}
	if s.historyPos >= span {
		s.historyPos = 0
	}

	line, _ := s.history.At(s.historyPos)
	s.setBuffer(line)
	s.view.RequestFocus()

	s.historyPos = (s.historyPos + 1) % span
}

// CompleteRequest replaces the buffer with the id of the top suggestion.
func (s *Session) CompleteRequest() {
	top := s.prediction.Top
	if top == nil {
		return
	}
	s.setBuffer(top.ID)
	s.view.RequestFocus()
}

// Submit executes the buffer. When a candidate is selected and the buffer is
// not already exactly its usage string, the candidate's id is accepted into
// the buffer instead and nothing runs; a second Submit executes it.
func (s *Session) Submit() {
	defer func() { s.historyPos = 0 }()

	if s.selected != NoSelection {
		candidate := s.prediction.Candidates[s.selected]
		if s.buffer != candidate.Usage {
			s.setBuffer(candidate.Command.ID)
			return
		}
	}

	s.execute()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ID returns the session id used in log records.
func (s *Session) ID() string { return s.id }

// Buffer returns the current edit buffer.
func (s *Session) Buffer() string { return s.buffer }

// Selected returns the prediction cursor, or NoSelection.
func (s *Session) Selected() int { return s.selected }

// Predictions returns the usage strings of the current candidates.
func (s *Session) Predictions() []string { return s.prediction.Usages() }

// TopSuggestion returns the usage of the top suggestion, or "".
func (s *Session) TopSuggestion() string {
	if s.prediction.Empty() {
		return ""
	}
	return s.prediction.Top.Usage
}

// History returns the submitted lines, newest first.
func (s *Session) History() []string { return s.history.Entries() }

// Registry returns the sealed command registry.
func (s *Session) Registry() *commands.Registry { return s.registry }

// Complete returns the ids of the commands matching line without touching
// session state. Line-mode front ends use it for tab completion.
func (s *Session) Complete(line string) []string {
	return s.predictor.Predict(line).IDs()
}

// SetMaxPredictions changes the candidate limit and recomputes the list.
func (s *Session) SetMaxPredictions(n int) {
	s.predictor.SetMaxPredictions(n)
	s.refresh()
}

// =============================================================================
// INTERNALS
// =============================================================================

func (s *Session) execute() {
	line := s.buffer
	res, err := s.dispatcher.Dispatch(s.ctx, s.view, line)
	switch {
	case err != nil:
		s.logger.Debug("dispatch failed", "line", line, "error", err)
		s.view.EmitWarning(fmt.Sprintf(NotRecognizedFormat, line))
	case res.Query:
		s.logger.Debug("query answered", "line", line, "command", res.Command.ID)
	default:
		added := s.history.Push(line)
		s.logger.Debug("command executed", "line", line, "command", res.Command.ID, "history_added", added)
	}

	s.buffer = ""
	s.view.ClearEditBuffer()
	s.refresh()
}

// setBuffer is used for every buffer change the session makes itself; it
// goes through the same recompute path as InputChanged.
func (s *Session) setBuffer(text string) {
	s.buffer = text
	s.view.SetEditBuffer(text)
	s.refresh()
}

func (s *Session) refresh() {
	s.selected = NoSelection
	s.prediction = s.predictor.Predict(s.buffer)
	s.view.SetPredictionList(s.prediction.Usages())
	s.view.SetPredictionCursor(NoSelection)
}
