// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package demo is a small host for the console: a world with gold, a ghost
// mode flag and a position, and the commands that change them.
package demo

import (
	"github.com/fdick/Console/internal/commands"
)

// World is the host state handed to command handlers through
// commands.Context.Host.
type World struct {
	Gold  int
	Ghost bool
	X, Y  int

	quit bool
}

// NewWorld returns a world at the origin with no gold.
func NewWorld() *World { return &World{} }

// Done reports whether the quit command ran.
func (w *World) Done() bool { return w.quit }

// Context returns a handler context bound to w.
func (w *World) Context(t commands.Transcript) *commands.Context {
	return &commands.Context{Transcript: t, Host: w}
}

// =============================================================================
// COMMANDS
// =============================================================================

// Commands returns the host commands in registration order.
func Commands() []*commands.Command {
	return []*commands.Command{
		{
			ID:          "gold_add",
			Description: "Add gold. <amount> is integer value.",
			Usage:       "gold_add <amount>",
			Action:      commands.Unary(commands.ArgInt, goldAdd),
		},
		{
			ID:          "gold_show",
			Description: "Show the current gold",
			Usage:       "gold_show",
			Action:      commands.Nullary(goldShow),
		},
		{
			ID:          "ghost",
			Description: "Walk through walls. 1 turns it on, 0 off.",
			Usage:       "ghost <on/off>",
			Action:      commands.Unary(commands.ArgInt, ghost),
		},
		{
			ID:          "teleport",
			Description: "Move to a position. <x> and <y> are integer values.",
			Usage:       "teleport <x> <y>",
			Action:      commands.Binary(commands.ArgInt, commands.ArgInt, teleport),
		},
		{
			ID:          "quit",
			Description: "Exit the console",
			Usage:       "quit",
			Silent:      true,
			Action:      commands.Nullary(quit),
		},
	}
}

func worldOf(ctx *commands.Context) (*World, bool) {
	if ctx == nil {
		return nil, false
	}
	w, ok := ctx.Host.(*World)
	if !ok || w == nil {
		ctx.Warn("No world attached.")
		return nil, false
	}
	return w, true
}

func goldAdd(ctx *commands.Context, amount int) {
	w, ok := worldOf(ctx)
	if !ok {
		return
	}
	w.Gold += amount
	ctx.Logf("Gold: %d", w.Gold)
}

func goldShow(ctx *commands.Context) {
	if w, ok := worldOf(ctx); ok {
		ctx.Logf("Gold: %d", w.Gold)
	}
}

func ghost(ctx *commands.Context, on int) {
	w, ok := worldOf(ctx)
	if !ok {
		return
	}
	switch on {
	case 0:
		w.Ghost = false
		ctx.Log("Ghost mode off.")
	case 1:
		w.Ghost = true
		ctx.Log("Ghost mode on.")
	default:
		ctx.Log(commands.UndefinedArgument)
	}
}

func teleport(ctx *commands.Context, x, y int) {
	w, ok := worldOf(ctx)
	if !ok {
		return
	}
	w.X, w.Y = x, y
	ctx.Logf("Teleported to (%d, %d).", x, y)
}

func quit(ctx *commands.Context) {
	if w, ok := worldOf(ctx); ok {
		w.quit = true
	}
}
