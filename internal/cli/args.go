// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for the devconsole binary.

package cli

import (
	"fmt"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser handles multiple flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
type ArgParser struct {
	flags      map[string]string // String flags (--key=value)
	boolFlags  map[string]bool   // Boolean flags (--line)
	positional []string
	boolNames  map[string]bool
}

// NewArgParser creates a parser from raw arguments. Names in boolNames never
// consume the following argument as a value.
//
// Example:
//
//	args := NewArgParser([]string{"--config", "dev.toml", "--line"}, "line")
//	args.Flag("config")    // "dev.toml"
//	args.BoolFlag("line")  // true
func NewArgParser(raw []string, boolNames ...string) *ArgParser {
	parser := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
		boolNames: make(map[string]bool, len(boolNames)),
	}
	for _, n := range boolNames {
		parser.boolNames[n] = true
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if !strings.HasPrefix(arg, "-") || arg == "-" {
			parser.positional = append(parser.positional, arg)
			i++
			continue
		}

		// Handle --flag=value format
		if strings.Contains(arg, "=") {
			parts := strings.SplitN(arg, "=", 2)
			flagName := strings.TrimLeft(parts[0], "-")
			flagValue := parts[1]

			if flagValue == "true" || flagValue == "false" {
				parser.boolFlags[flagName] = flagValue == "true"
			} else {
				parser.flags[flagName] = flagValue
			}
			i++
			continue
		}

		flagName := strings.TrimLeft(arg, "-")
		if !parser.boolNames[flagName] && i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
			parser.flags[flagName] = raw[i+1]
			i += 2
		} else {
			parser.boolFlags[flagName] = true
			i++
		}
	}

	return parser
}

// Flag returns the value of a string flag, or "".
func (p *ArgParser) Flag(name string) string {
	return p.flags[strings.TrimLeft(name, "-")]
}

// BoolFlag returns the value of a boolean flag; false if absent.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[strings.TrimLeft(name, "-")]
}

// Positional returns the positional argument at index, or "".
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// Names returns every flag name seen, string and boolean.
func (p *ArgParser) Names() []string {
	names := make([]string, 0, len(p.flags)+len(p.boolFlags))
	for n := range p.flags {
		names = append(names, n)
	}
	for n := range p.boolFlags {
		names = append(names, n)
	}
	return names
}

// =============================================================================
// DEVCONSOLE FLAGS
// =============================================================================

// Args are the parsed devconsole command-line options.
type Args struct {
	ConfigPath  string // --config PATH
	Line        bool   // --line: use the line-mode front end
	WriteConfig bool   // --write-config: write a starter config file and exit
	Version     bool   // --version
	Help        bool   // --help, -h
}

// UsageText is printed for --help.
const UsageText = `Usage: devconsole [--config PATH] [--line] [--write-config] [--version]

  --config PATH   read configuration from PATH instead of ~/.devconsole/config.toml
  --line          use the line-mode prompt instead of the full-screen console
  --write-config  write the default configuration to the config path and exit
                  (an existing file is left untouched)
  --version       print the version and exit

When stdin is not a terminal, each input line is executed as a command.`

var knownFlags = map[string]bool{
	"config": true, "line": true, "write-config": true, "version": true, "help": true, "h": true,
}

// ParseArgs parses devconsole's flags, rejecting unknown flags and stray
// positional arguments.
func ParseArgs(raw []string) (Args, error) {
	p := NewArgParser(raw, "line", "write-config", "version", "help", "h")

	for _, name := range p.Names() {
		if !knownFlags[name] {
			return Args{}, fmt.Errorf("unknown flag: --%s", name)
		}
	}
	if p.PositionalCount() > 0 {
		return Args{}, fmt.Errorf("unexpected argument: %s", p.Positional(0))
	}
	if p.BoolFlag("config") {
		return Args{}, fmt.Errorf("--config requires a path")
	}

	return Args{
		ConfigPath:  p.Flag("config"),
		Line:        p.BoolFlag("line"),
		WriteConfig: p.BoolFlag("write-config"),
		Version:     p.BoolFlag("version"),
		Help:        p.BoolFlag("help") || p.BoolFlag("h"),
	}, nil
}
