// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdick/Console/internal/config"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewThemeFor_NoColor(t *testing.T) {
	theme := NewThemeFor(&bytes.Buffer{}, config.UIConfig{Theme: "dark", NoColor: true})
	require.NotNil(t, theme)
	assert.Equal(t, termenv.Ascii, theme.renderer.ColorProfile())
	assert.True(t, theme.renderer.HasDarkBackground())

	// The ASCII profile drops every escape sequence.
	assert.Equal(t, "hello", theme.LogLine.Render("hello"))
	assert.NotContains(t, theme.PredictionSelected.Render("picture <id>"), "\x1b[")
}

func TestNewThemeFor_ExplicitLight(t *testing.T) {
	theme := NewThemeFor(&bytes.Buffer{}, config.UIConfig{Theme: "light", NoColor: true})
	assert.False(t, theme.renderer.HasDarkBackground())
}

func TestRenderWarning_KeepsIndicator(t *testing.T) {
	theme := NewThemeFor(&bytes.Buffer{}, config.UIConfig{Theme: "dark", NoColor: true})
	assert.Equal(t, "[!] Command is not recognized <x>", theme.RenderWarning("Command is not recognized <x>"))
}

func TestThemeStylesInitialized(t *testing.T) {
	theme := NewThemeFor(&bytes.Buffer{}, config.UIConfig{Theme: "dark", NoColor: true})

	for name, rendered := range map[string]string{
		"Header":         theme.Header.Render("test"),
		"InputContainer": theme.InputContainer.Render("test"),
		"PredictionBox":  theme.PredictionBox.Render("test"),
		"StatusBar":      theme.StatusBar.Render("test"),
	} {
		assert.Contains(t, rendered, "test", name)
	}
}
