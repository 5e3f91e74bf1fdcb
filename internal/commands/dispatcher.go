// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// Printer receives the lines the dispatcher writes itself: the echo of an
// invoked command and the answer to a query.
type Printer interface {
	EmitLog(text string)
}

// Result describes a successful dispatch.
type Result struct {
	// Command is the matched command
	Command *Command

	// Query is true when the line was a description lookup; nothing was invoked
	Query bool
}

// Dispatcher matches lines against a registry and invokes handlers.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch executes a raw line. A query ("id?") prints the usage and
// description of the first prefix match. Anything else is tokenized, matched
// by exact id, validated against the command's arity and argument kinds and
// then invoked with ctx. The returned error wraps ErrUnknownCommand,
// ErrArityMismatch or ErrArgumentParse.
func (d *Dispatcher) Dispatch(ctx *Context, out Printer, line string) (Result, error) {
	if key, ok := SplitQuery(line); ok {
		return d.query(out, key)
	}

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Result{}, &DispatchError{Err: ErrUnknownCommand}
	}

	cmd, ok := d.registry.Lookup(tokens[0])
	if !ok {
		return Result{}, &DispatchError{Command: tokens[0], Err: ErrUnknownCommand}
	}

	args := tokens[1:]
	if len(args) != cmd.Arity() {
		return Result{}, &DispatchError{Command: cmd.ID, Err: ErrArityMismatch}
	}

	switch action := cmd.Action.(type) {
	case NullaryAction:
		echo(out, cmd, line)
		if action.Run != nil {
			action.Run(ctx)
		}

	case UnaryAction:
		arg, err := ParseArg(action.Kind, args[0])
		if err != nil {
			return Result{}, &DispatchError{Command: cmd.ID, Token: args[0], Err: err}
		}
		echo(out, cmd, line)
		if action.Run != nil {
			action.Run(ctx, arg)
		}

	case BinaryAction:
		arg1, err := ParseArg(action.Kinds[0], args[0])
		if err != nil {
			return Result{}, &DispatchError{Command: cmd.ID, Token: args[0], Err: err}
		}
		arg2, err := ParseArg(action.Kinds[1], args[1])
		if err != nil {
			return Result{}, &DispatchError{Command: cmd.ID, Token: args[1], Err: err}
		}
		echo(out, cmd, line)
		if action.Run != nil {
			action.Run(ctx, arg1, arg2)
		}

	default:
		return Result{}, &DispatchError{Command: cmd.ID, Err: ErrUnknownCommand}
	}

	return Result{Command: cmd}, nil
}

func (d *Dispatcher) query(out Printer, key string) (Result, error) {
	matches := d.registry.PrefixSearch(key)
	if len(matches) == 0 {
		return Result{}, &DispatchError{Command: key, Err: ErrUnknownCommand}
	}

	cmd := matches[0]
	if out != nil {
		out.EmitLog(FormatQuery(cmd))
	}
	return Result{Command: cmd, Query: true}, nil
}

// FormatQuery renders the answer to "id?".
func FormatQuery(cmd *Command) string {
	return cmd.Usage + " - " + cmd.Description
}

func echo(out Printer, cmd *Command, line string) {
	if cmd.Silent || out == nil {
		return
	}
	out.EmitLog(line)
}
