// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
)

// Registration errors.
var (
	// ErrDuplicateID indicates a command with the same id is already registered.
	ErrDuplicateID = errors.New("commands: duplicate command id")

	// ErrInvalidID indicates the id is empty or contains whitespace or '?'.
	ErrInvalidID = errors.New("commands: invalid command id")

	// ErrNilAction indicates the command has no action.
	ErrNilAction = errors.New("commands: command has no action")

	// ErrRegistrySealed indicates registration after the registry was closed.
	ErrRegistrySealed = errors.New("commands: registry is sealed")
)

// Dispatch errors. Callers are expected to collapse these into a single
// "not recognized" outcome for the user.
var (
	// ErrUnknownCommand indicates no command matches the input.
	ErrUnknownCommand = errors.New("commands: unknown command")

	// ErrArityMismatch indicates the wrong number of tokens for the command.
	ErrArityMismatch = errors.New("commands: wrong number of arguments")

	// ErrArgumentParse indicates an argument did not parse as its kind.
	ErrArgumentParse = errors.New("commands: invalid argument")
)

// DispatchError carries the detail of a failed dispatch.
type DispatchError struct {
	Command string
	Token   string
	Err     error
}

func (e *DispatchError) Error() string {
	msg := e.Err.Error()
	if e.Command != "" {
		msg += " (" + e.Command
		if e.Token != "" {
			msg += fmt.Sprintf(", got %q", e.Token)
		}
		msg += ")"
	}
	return msg
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
