// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fdick/Console/internal/console"
)

func TestScreenBoundsTranscript(t *testing.T) {
	s := NewScreen(3)
	for i := 0; i < 5; i++ {
		s.EmitLog(fmt.Sprintf("line %d", i))
	}

	assert.Equal(t, []string{"line 2", "line 3", "line 4"}, transcriptText(s))

	s.SetCapacity(1)
	assert.Equal(t, []string{"line 4"}, transcriptText(s))
}

func TestScreenEditHandoff(t *testing.T) {
	s := NewScreen(0)
	assert.Equal(t, DefaultTranscriptCapacity, s.Capacity())

	_, ok := s.TakeEdit()
	assert.False(t, ok)

	s.SetEditBuffer("help")
	text, ok := s.TakeEdit()
	assert.True(t, ok)
	assert.Equal(t, "help", text)

	_, ok = s.TakeEdit()
	assert.False(t, ok, "edit is consumed once")

	s.ClearEditBuffer()
	text, ok = s.TakeEdit()
	assert.True(t, ok)
	assert.Equal(t, "", text)
}

func TestScreenTranscriptInterface(t *testing.T) {
	s := NewScreen(10)
	rev := s.Revision()

	s.Log("a")
	s.Warn("b")
	assert.Equal(t, []Line{{Text: "a"}, {Text: "b", Warning: true}}, s.Lines())
	assert.Greater(t, s.Revision(), rev)

	s.Clear()
	assert.Empty(t, s.Lines())
}

func TestScreenPredictionState(t *testing.T) {
	s := NewScreen(0)
	assert.Equal(t, console.NoSelection, s.Cursor())

	s.SetPredictionList([]string{"clear", "clearall"})
	s.SetPredictionCursor(1)
	assert.Equal(t, []string{"clear", "clearall"}, s.Predictions())
	assert.Equal(t, 1, s.Cursor())

	s.RequestFocus()
	assert.True(t, s.TakeFocus())
	assert.False(t, s.TakeFocus())
}
