// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdick/Console/internal/commands"
	"github.com/fdick/Console/internal/config"
	"github.com/fdick/Console/internal/console"
	"github.com/fdick/Console/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newPrinterSession(t *testing.T, extra ...*commands.Command) (*console.Session, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	theme := styles.NewThemeFor(&out, config.UIConfig{Theme: "dark", NoColor: true})
	printer := NewPrinter(&out, theme, false)

	s, err := console.New(printer, console.Options{
		Commands: extra,
		Context:  &commands.Context{Transcript: printer},
	})
	require.NoError(t, err)
	return s, &out
}

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name: "flag with value",
			args: []string{"--config", "dev.toml"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "dev.toml", p.Flag("config"))
				assert.Equal(t, "dev.toml", p.Flag("--config"))
			},
		},
		{
			name: "flag with equals",
			args: []string{"--config=dev.toml"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "dev.toml", p.Flag("config"))
			},
		},
		{
			name: "declared boolean does not consume next arg",
			args: []string{"--line", "extra"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.True(t, p.BoolFlag("line"))
				assert.Equal(t, "extra", p.Positional(0))
			},
		},
		{
			name: "explicit boolean",
			args: []string{"--line=false"},
			validate: func(t *testing.T, p *ArgParser) {
				assert.False(t, p.BoolFlag("line"))
				assert.Equal(t, []string{"line"}, p.Names())
			},
		},
		{
			name: "default",
			args: nil,
			validate: func(t *testing.T, p *ArgParser) {
				assert.Equal(t, "", p.Flag("config"))
				assert.Empty(t, p.Names())
				assert.Equal(t, 0, p.PositionalCount())
				assert.Equal(t, "", p.Positional(3))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NewArgParser(tt.args, "line"))
		})
	}
}

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs([]string{"--config", "/tmp/c.toml", "--line"})
	require.NoError(t, err)
	assert.Equal(t, Args{ConfigPath: "/tmp/c.toml", Line: true}, args)

	args, err = ParseArgs([]string{"-h"})
	require.NoError(t, err)
	assert.True(t, args.Help)

	args, err = ParseArgs([]string{"--version"})
	require.NoError(t, err)
	assert.True(t, args.Version)

	args, err = ParseArgs([]string{"--write-config", "--config", "/tmp/c.toml"})
	require.NoError(t, err)
	assert.Equal(t, Args{ConfigPath: "/tmp/c.toml", WriteConfig: true}, args)
}

func TestParseArgs_Errors(t *testing.T) {
	for _, raw := range [][]string{
		{"--colour"},
		{"stray"},
		{"--config"},
	} {
		_, err := ParseArgs(raw)
		assert.Error(t, err, strings.Join(raw, " "))
	}
}

// =============================================================================
// MODE SELECTION TESTS (terminal.go)
// =============================================================================

func TestSelectMode(t *testing.T) {
	assert.Equal(t, ModeScript, SelectMode(false, false, true))
	assert.Equal(t, ModeScript, SelectMode(true, false, true))
	assert.Equal(t, ModeLine, SelectMode(true, true, true))
	assert.Equal(t, ModeLine, SelectMode(false, true, false))
	assert.Equal(t, ModeTUI, SelectMode(false, true, true))
	assert.Equal(t, "script", ModeScript.String())
}

// =============================================================================
// EXECUTION TESTS (line.go, script.go, printer.go)
// =============================================================================

func TestExecute_ReportsRecordedLines(t *testing.T) {
	s, out := newPrinterSession(t)

	assert.True(t, Execute(s, "picture 2"))
	assert.False(t, Execute(s, "picture 2"), "adjacent duplicate is not recorded")
	assert.False(t, Execute(s, "nope"))
	assert.False(t, Execute(s, "picture?"), "queries are not recorded")

	text := out.String()
	assert.Contains(t, text, "picture 2\n")
	assert.Contains(t, text, "[!] Command is not recognized <nope>")
	assert.Contains(t, text, "picture <id> - Draw a picture by ID. <id> is integer value.")
}

func TestExecute_RecordsAtCapacity(t *testing.T) {
	s, _ := newPrinterSession(t)
	for i := 0; i < 10; i++ {
		require.True(t, Execute(s, fmt.Sprintf("picture %d%s", i%4, strings.Repeat(" ", i))))
	}
	assert.True(t, Execute(s, "help"))
}

func TestRunScript(t *testing.T) {
	var gold int
	s, out := newPrinterSession(t, &commands.Command{
		ID:     "gold_add",
		Usage:  "gold_add <amount>",
		Action: commands.Unary(commands.ArgInt, func(ctx *commands.Context, n int) {
			gold += n
			ctx.Logf("gold: %d", gold)
		}),
	})

	script := "gold_add 5\ngold_add x\ngold_add 7\n"
	n, err := RunScript(context.Background(), strings.NewReader(script), s, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 12, gold)
	assert.Contains(t, out.String(), "gold: 12")
	assert.Contains(t, out.String(), "Command is not recognized <gold_add x>")
	assert.Equal(t, []string{"gold_add 7", "gold_add 5"}, s.History())
}

func TestRunScript_StopsWhenDone(t *testing.T) {
	s, _ := newPrinterSession(t)
	calls := 0
	n, err := RunScript(context.Background(), strings.NewReader("help\nhelp\nhelp\n"), s, func() bool {
		calls++
		return calls == 2
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRunScript_Cancelled(t *testing.T) {
	s, _ := newPrinterSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := RunScript(ctx, strings.NewReader("help\n"), s, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, n)
}

func TestPrinter_ClearWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	theme := styles.NewThemeFor(&out, config.UIConfig{Theme: "dark", NoColor: true})
	p := NewPrinter(&out, theme, false)

	p.Log("one")
	p.Clear()
	p.Warn("two")
	assert.Equal(t, "one\n[!] two\n", out.String())
}

func TestPrinter_ClearOnTerminal(t *testing.T) {
	var out bytes.Buffer
	theme := styles.NewThemeFor(&out, config.UIConfig{Theme: "dark", NoColor: true})
	NewPrinter(&out, theme, true).Clear()
	assert.Contains(t, out.String(), "\x1b[2J")
}
