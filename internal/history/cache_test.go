// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_NewestFirst(t *testing.T) {
	c := NewCache(5)
	c.Push("help")
	c.Push("clear")
	c.Push("picture 1")

	assert.Equal(t, []string{"picture 1", "clear", "help"}, c.Entries())

	newest, ok := c.At(0)
	require.True(t, ok)
	assert.Equal(t, "picture 1", newest)
}

func TestCache_AdjacentDuplicateSuppression(t *testing.T) {
	c := NewCache(10)

	assert.True(t, c.Push("help"))
	assert.False(t, c.Push("help"))
	assert.Equal(t, []string{"help"}, c.Entries())

	// Only the newest entry is compared.
	assert.True(t, c.Push("clear"))
	assert.True(t, c.Push("help"))
	assert.Equal(t, []string{"help", "clear", "help"}, c.Entries())
}

func TestCache_EvictsOldest(t *testing.T) {
	c := NewCache(10)
	for i := 0; i < 11; i++ {
		c.Push(fmt.Sprintf("cmd_%d", i))
	}

	require.Equal(t, 10, c.Len())
	newest, _ := c.At(0)
	assert.Equal(t, "cmd_10", newest)
	oldest, _ := c.At(9)
	assert.Equal(t, "cmd_1", oldest)
	assert.NotContains(t, c.Entries(), "cmd_0")
}

func TestCache_Span(t *testing.T) {
	c := NewCache(3)
	assert.Equal(t, 0, c.Span())
	c.Push("a")
	c.Push("b")
	assert.Equal(t, 2, c.Span())
	c.Push("c")
	c.Push("d")
	assert.Equal(t, 3, c.Span())
	assert.Equal(t, 3, c.Capacity())
}

func TestCache_At(t *testing.T) {
	c := NewCache(3)
	_, ok := c.At(0)
	assert.False(t, ok)

	c.Push("a")
	_, ok = c.At(-1)
	assert.False(t, ok)
	_, ok = c.At(1)
	assert.False(t, ok)
}

func TestCache_DefaultCapacity(t *testing.T) {
	c := NewCache(0)
	assert.Equal(t, DefaultCapacity, c.Capacity())

	c = NewCache(-3)
	assert.Equal(t, DefaultCapacity, c.Capacity())
}

func TestCache_EntriesIsACopy(t *testing.T) {
	c := NewCache(3)
	c.Push("a")
	entries := c.Entries()
	entries[0] = "mutated"

	newest, _ := c.At(0)
	assert.Equal(t, "a", newest)
}
