// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

// NoSelection is the prediction cursor value when no candidate is selected.
const NoSelection = -1

// View is the front end a Session drives. Implementations render the edit
// field, the prediction list and the transcript; the session never reads
// state back from them.
type View interface {
	// SetEditBuffer replaces the text in the edit field.
	SetEditBuffer(text string)

	// ClearEditBuffer empties the edit field.
	ClearEditBuffer()

	// SetPredictionList replaces the displayed candidates.
	SetPredictionList(items []string)

	// SetPredictionCursor highlights a candidate, or none for NoSelection.
	SetPredictionCursor(index int)

	// EmitLog appends a line to the transcript.
	EmitLog(text string)

	// EmitWarning appends a highlighted line to the transcript.
	EmitWarning(text string)

	// RequestFocus returns keyboard focus to the edit field.
	RequestFocus()
}
