// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the full-screen terminal front end for the console.
//
// # Key Types
//
//   - Screen: Transcript, predictions and pending edits written by the session
//   - Model: Bubble Tea model mapping keys to session events
//   - KeyMap: Enter, Tab, Up, Down, F1 and Ctrl+C bindings
//
// # Usage
//
//	screen := ui.NewScreen(cfg.Console.TranscriptCapacity)
//	session, _ := console.New(screen, console.Options{
//	    Context: &commands.Context{Transcript: screen, Host: world},
//	})
//	p := tea.NewProgram(ui.New(ui.Options{Session: session, Screen: screen, Config: cfg}))
//	_, err := p.Run()
package ui
