// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// QueryMarker turns a line into a description lookup ("clear?").
const QueryMarker = '?'

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits a raw line into whitespace-delimited tokens.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// SplitQuery reports whether line is a query and returns the lookup key,
// which is everything before the first '?'. Text after the marker is ignored.
func SplitQuery(line string) (key string, ok bool) {
	idx := strings.IndexRune(line, QueryMarker)
	if idx < 0 {
		return "", false
	}
	return line[:idx], true
}

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

// ParseArg converts a token to the value of the given kind. ArgInt accepts
// decimal values in the 32-bit signed range.
func ParseArg(kind ArgKind, token string) (int, error) {
	switch kind {
	case ArgInt:
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a 32-bit integer", ErrArgumentParse, token)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: unsupported kind %s", ErrArgumentParse, kind)
	}
}
