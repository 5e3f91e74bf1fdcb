// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history keeps the most recently submitted console lines.
package history

// DefaultCapacity is the number of lines kept when none is configured.
const DefaultCapacity = 10

// Cache is a bounded list of lines ordered newest first.
// It is not safe for concurrent use; the console session owns it.
type Cache struct {
	entries  []string
	capacity int
}

// NewCache creates a cache with the given capacity. A non-positive capacity
// uses DefaultCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Push records a line as the newest entry. A line equal to the current
// newest entry is dropped; older duplicates are kept. When the cache is full
// the oldest entry is evicted. Push reports whether the line was added.
func (c *Cache) Push(line string) bool {
	if len(c.entries) > 0 && c.entries[0] == line {
		return false
	}

	if len(c.entries) == c.capacity {
		c.entries = c.entries[:len(c.entries)-1]
	}

	c.entries = append(c.entries, "")
	copy(c.entries[1:], c.entries)
	c.entries[0] = line
	return true
}

// At returns the entry at index i, where 0 is the newest.
func (c *Cache) At(i int) (string, bool) {
	if i < 0 || i >= len(c.entries) {
		return "", false
	}
	return c.entries[i], true
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Span is the range a recall cursor cycles through: min(capacity, len).
func (c *Cache) Span() int {
	if len(c.entries) < c.capacity {
		return len(c.entries)
	}
	return c.capacity
}

// Entries returns a copy of the entries, newest first.
func (c *Cache) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}
