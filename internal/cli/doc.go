// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing and the non-fullscreen front ends.
//
// # Key Types
//
//   - Args: Parsed --config, --line, --write-config, --version and --help flags
//   - Printer: console.View writing transcript lines to a writer
//   - LineREPL: liner prompt with id completion and in-memory recall
//   - Mode: TUI, line or script front end
//
// # Usage
//
//	args, err := cli.ParseArgs(os.Args[1:])
//	switch cli.SelectMode(args.Line, cli.IsTTY(), cli.IsStdoutTTY()) {
//	case cli.ModeScript:
//	    _, err = cli.RunScript(ctx, os.Stdin, session, world.Done)
//	case cli.ModeLine:
//	    repl := cli.NewLineREPL(session, cli.LineOptions{Done: world.Done})
//	    defer repl.Close()
//	    err = repl.Run(ctx)
//	}
package cli
