// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command registry, dispatcher and prediction engine.
package commands

import (
	"fmt"
	"strings"
	"unicode"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command is a registered console command.
type Command struct {
	// ID is the token typed to invoke the command (e.g., "picture")
	ID string

	// Description is shown by the query syntax ("picture?")
	Description string

	// Usage shows argument syntax (e.g., "picture <id>") and is what the
	// prediction list displays
	Usage string

	// Silent commands are not echoed to the transcript before invocation
	Silent bool

	// Action holds the arity and the handler
	Action Action
}

// Arity returns the number of positional arguments the command accepts.
func (c *Command) Arity() int {
	if c.Action == nil {
		return 0
	}
	return c.Action.Arity()
}

// ArgKind is the kind of a positional argument.
type ArgKind int

const (
	// ArgInt is a base-10 integer argument.
	ArgInt ArgKind = iota
)

func (k ArgKind) String() string {
	switch k {
	case ArgInt:
		return "int"
	default:
		return fmt.Sprintf("ArgKind(%d)", int(k))
	}
}

// Action is the closed set of command shapes. The only implementations are
// NullaryAction, UnaryAction and BinaryAction.
type Action interface {
	Arity() int
	isAction()
}

// NullaryAction is a command that takes no arguments.
type NullaryAction struct {
	Run func(ctx *Context)
}

// UnaryAction is a command that takes one argument.
type UnaryAction struct {
	Kind ArgKind
	Run  func(ctx *Context, arg int)
}

// BinaryAction is a command that takes two arguments.
type BinaryAction struct {
	Kinds [2]ArgKind
	Run   func(ctx *Context, arg1, arg2 int)
}

func (NullaryAction) Arity() int { return 0 }
func (UnaryAction) Arity() int   { return 1 }
func (BinaryAction) Arity() int  { return 2 }

func (NullaryAction) isAction() {}
func (UnaryAction) isAction()   {}
func (BinaryAction) isAction()  {}

// Nullary builds an action without arguments.
func Nullary(run func(ctx *Context)) Action {
	return NullaryAction{Run: run}
}

// Unary builds a one-argument action.
func Unary(kind ArgKind, run func(ctx *Context, arg int)) Action {
	return UnaryAction{Kind: kind, Run: run}
}

// Binary builds a two-argument action.
func Binary(kind1, kind2 ArgKind, run func(ctx *Context, arg1, arg2 int)) Action {
	return BinaryAction{Kinds: [2]ArgKind{kind1, kind2}, Run: run}
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands in registration order.
type Registry struct {
	commands map[string]*Command
	order    []*Command
	sealed   bool
}

// NewRegistry creates an empty registry. Use RegisterBuiltins to add the
// default commands.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// ValidateID reports whether id can be used as a command id.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidID)
	}
	if strings.ContainsRune(id, '?') {
		return fmt.Errorf("%w: %q contains '?'", ErrInvalidID, id)
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidID, id)
	}
	return nil
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) error {
	if r.sealed {
		return ErrRegistrySealed
	}
	if cmd == nil {
		return fmt.Errorf("%w: nil command", ErrInvalidID)
	}
	if err := ValidateID(cmd.ID); err != nil {
		return err
	}
	if cmd.Action == nil {
		return fmt.Errorf("%w: %s", ErrNilAction, cmd.ID)
	}
	if _, exists := r.commands[cmd.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, cmd.ID)
	}

	r.commands[cmd.ID] = cmd
	r.order = append(r.order, cmd)
	return nil
}

// Seal closes the registry. Register fails afterwards.
func (r *Registry) Seal() {
	r.sealed = true
}

// Lookup retrieves a command by exact id.
func (r *Registry) Lookup(id string) (*Command, bool) {
	cmd, ok := r.commands[id]
	return cmd, ok
}

// PrefixSearch returns, in registration order, every command whose id starts
// with partial. The partial is matched literally, so no input can make the
// search fail; unmatched input just yields nil.
func (r *Registry) PrefixSearch(partial string) []*Command {
	var matches []*Command
	for _, cmd := range r.order {
		if strings.HasPrefix(cmd.ID, partial) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// All returns all registered commands in registration order.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, len(r.order))
	copy(cmds, r.order)
	return cmds
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}

// =============================================================================
// CONTEXT TYPE
// =============================================================================

// Transcript is the console output area handlers write to.
type Transcript interface {
	// Log appends a line to the transcript.
	Log(text string)

	// Warn appends a highlighted line to the transcript.
	Warn(text string)

	// Clear removes every line from the transcript.
	Clear()
}

// Context is passed to every handler at invocation time. It is built and
// owned by the host application; the console only hands it through.
//
// Example usage in a handler:
//
//	func handleGold(ctx *Context, amount int) {
//	    w := ctx.Host.(*World)
//	    w.Gold += amount
//	    ctx.Logf("gold is now %d", w.Gold)
//	}
type Context struct {
	// Transcript receives handler output
	Transcript Transcript

	// Host is application state the host wants its handlers to reach
	Host any
}

// Log writes a line to the transcript if one is attached.
func (c *Context) Log(text string) {
	if c != nil && c.Transcript != nil {
		c.Transcript.Log(text)
	}
}

// Logf writes a formatted line to the transcript.
func (c *Context) Logf(format string, args ...any) {
	c.Log(fmt.Sprintf(format, args...))
}

// Warn writes a warning to the transcript if one is attached.
func (c *Context) Warn(text string) {
	if c != nil && c.Transcript != nil {
		c.Transcript.Warn(text)
	}
}
