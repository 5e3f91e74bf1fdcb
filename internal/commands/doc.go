// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command system behind the developer console.
//
// This package owns the registered commands, turns raw lines into validated
// invocations and computes the autocomplete list for the edit buffer.
//
// # Key Types
//
//   - Registry: Commands in registration order with exact and prefix lookup
//   - Command: Id, usage, description and a closed Action variant
//   - Dispatcher: Validates arity and argument kinds, then invokes handlers
//   - Predictor: Prefix candidates for the edit buffer
//   - Context: Host-owned state handed to every handler
//
// # Built-in Commands
//
//   - clear: Clear the console (silent)
//   - picture <id>: Draw a picture
//   - help: Show key bindings and default commands
//
// # Usage
//
// Register and execute a command:
//
//	r := commands.NewRegistry()
//	_ = commands.RegisterBuiltins(r)
//	_ = r.Register(&commands.Command{
//	    ID:     "ghost",
//	    Usage:  "ghost <on/off>",
//	    Action: commands.Unary(commands.ArgInt, setGhost),
//	})
//	_, err := commands.NewDispatcher(r).Dispatch(ctx, view, "ghost 1")
//
// Get predictions:
//
//	p := commands.NewPredictor(r, 10).Predict("pic")
//	// p.Top.ID == "picture", p.Usages() == ["picture <id>"]
package commands
