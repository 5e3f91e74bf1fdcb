// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides file helpers for the config writer.
//
//	err := util.AtomicWriteFile(path, data, 0644)
package util
