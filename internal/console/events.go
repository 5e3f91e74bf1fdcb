// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

// Event is an input reported by the view. Events are handled strictly in
// order, each to completion before the next.
type Event interface {
	isEvent()
}

// InputChanged reports the new contents of the edit field.
type InputChanged struct {
	Text string
}

// Submit reports the confirm key (Enter).
type Submit struct{}

// HistoryPrev reports the recall key (Up Arrow).
type HistoryPrev struct{}

// PredictionNext reports the candidate cycling key (Down Arrow).
type PredictionNext struct{}

// CompleteRequest reports the completion key (Tab).
type CompleteRequest struct{}

func (InputChanged) isEvent()    {}
func (Submit) isEvent()          {}
func (HistoryPrev) isEvent()     {}
func (PredictionNext) isEvent()  {}
func (CompleteRequest) isEvent() {}
