// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fdick/Console/internal/console"
)

// RunScript executes each line of r in order, stopping at EOF, when ctx is
// cancelled or when done reports true. It returns the number of lines run.
func RunScript(ctx context.Context, r io.Reader, s *console.Session, done func() bool) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return n, ctx.Err()
		}
		Execute(s, scanner.Text())
		n++
		if done != nil && done() {
			return n, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("read script: %w", err)
	}
	return n, nil
}
