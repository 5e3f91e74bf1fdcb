// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// UndefinedArgument is printed by handlers that receive a well-formed but
// meaningless argument (e.g., an unknown picture id).
const UndefinedArgument = "Undefined argument."

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

// Builtins returns the default commands every console starts with.
func Builtins() []*Command {
	return []*Command{
		{
			ID:          "clear",
			Description: "Clear the console",
			Usage:       "clear",
			Silent:      true,
			Action:      Nullary(HandleClear),
		},
		{
			ID:          "picture",
			Description: "Draw a picture by ID. <id> is integer value.",
			Usage:       "picture <id>",
			Action:      Unary(ArgInt, HandlePicture),
		},
		{
			ID:          "help",
			Description: "Show a help window",
			Usage:       "help",
			Action:      Nullary(HandleHelp),
		},
	}
}

// RegisterBuiltins adds the default commands to r.
func RegisterBuiltins(r *Registry) error {
	for _, cmd := range Builtins() {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// HANDLER IMPLEMENTATIONS
// =============================================================================

// HandleClear empties the transcript.
func HandleClear(ctx *Context) {
	if ctx != nil && ctx.Transcript != nil {
		ctx.Transcript.Clear()
	}
}

// HandleHelp prints the key bindings and the default commands.
func HandleHelp(ctx *Context) {
	ctx.Log("")
	ctx.Log("1. To see command description, type {command name}?. For example: clear?")
	ctx.Log("2. To finish an existing command press [Tab] key when typing any command.")
	ctx.Log("3. To return a last typed correct command, press [Up Arrow] key.")
	ctx.Log("4. To select a predicted command in the below window, press [Down Arrow] key.")
	ctx.Log("")
	ctx.Log("Default commands:")
	for _, cmd := range Builtins() {
		ctx.Log("- " + cmd.ID)
	}
}

// HandlePicture prints one of the built-in pictures.
func HandlePicture(ctx *Context, id int) {
	if id < 0 || id >= len(pictures) {
		ctx.Log(UndefinedArgument)
		return
	}
	for _, line := range pictures[id] {
		ctx.Log(line)
	}
}

var pictures = [][]string{
	{
		`   /\_/\  `,
		`  ( o.o ) `,
		`   > ^ <  `,
	},
	{
		`   .-.   `,
		`  (o o)  `,
		`  | O |  `,
		`  |   |  `,
		`  '~~~'  `,
	},
	{
		` _____________________ `,
		`|  ___  ___  _  _  ___ |`,
		`| |    |   || \| ||__  |`,
		`| |___ |___|| |\ | ___||`,
		`|______________________|`,
	},
	{
		`      *      `,
		`     ***     `,
		`    *****    `,
		`   *******   `,
		`      |      `,
	},
}
