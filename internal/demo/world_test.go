// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdick/Console/internal/commands"
)

type transcript struct {
	logs  []string
	warns []string
}

func (t *transcript) Log(s string)     { t.logs = append(t.logs, s) }
func (t *transcript) Warn(s string)    { t.warns = append(t.warns, s) }
func (t *transcript) Clear()           { t.logs, t.warns = nil, nil }
func (t *transcript) EmitLog(s string) { t.Log(s) }

func setup(t *testing.T) (*World, *transcript, *commands.Dispatcher) {
	t.Helper()
	r := commands.NewRegistry()
	require.NoError(t, commands.RegisterBuiltins(r))
	for _, cmd := range Commands() {
		require.NoError(t, r.Register(cmd))
	}
	r.Seal()
	return NewWorld(), &transcript{}, commands.NewDispatcher(r)
}

func TestWorldCommands(t *testing.T) {
	w, tr, d := setup(t)
	ctx := w.Context(tr)

	tests := []struct {
		line string
		want string
	}{
		{"gold_add 50", "Gold: 50"},
		{"gold_add -20", "Gold: 30"},
		{"gold_show", "Gold: 30"},
		{"ghost 1", "Ghost mode on."},
		{"ghost 7", commands.UndefinedArgument},
		{"teleport 3 -4", "Teleported to (3, -4)."},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := d.Dispatch(ctx, tr, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.logs[len(tr.logs)-1])
		})
	}

	assert.Equal(t, 30, w.Gold)
	assert.True(t, w.Ghost)
	assert.Equal(t, 3, w.X)
	assert.Equal(t, -4, w.Y)
}

func TestQuitIsSilentAndSetsDone(t *testing.T) {
	w, tr, d := setup(t)

	_, err := d.Dispatch(w.Context(tr), tr, "quit")
	require.NoError(t, err)
	assert.True(t, w.Done())
	assert.Empty(t, tr.logs)
}

func TestHandlersWithoutWorldWarn(t *testing.T) {
	_, tr, d := setup(t)

	_, err := d.Dispatch(&commands.Context{Transcript: tr}, tr, "gold_show")
	require.NoError(t, err)
	assert.Equal(t, []string{"No world attached."}, tr.warns)
}

func TestArgumentErrors(t *testing.T) {
	w, tr, d := setup(t)

	_, err := d.Dispatch(w.Context(tr), tr, "teleport 1")
	assert.ErrorIs(t, err, commands.ErrArityMismatch)

	_, err = d.Dispatch(w.Context(tr), tr, "gold_add lots")
	assert.ErrorIs(t, err, commands.ErrArgumentParse)
	assert.Equal(t, 0, w.Gold)
}
