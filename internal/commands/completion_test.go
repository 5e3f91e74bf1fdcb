// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPredictorPredict tests basic prediction functionality
func TestPredictorPredict(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, RegisterBuiltins(registry))
	require.NoError(t, registry.Register(&Command{ID: "clearall", Usage: "clearall", Action: Nullary(nil)}))
	require.NoError(t, registry.Register(&Command{ID: "pr_hpadd", Usage: "pr_hpadd <amount>", Action: Unary(ArgInt, nil)}))

	predictor := NewPredictor(registry, 10)

	tests := []struct {
		name      string
		input     string
		wantTop   string
		wantUsage []string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:      "shared prefix keeps registration order",
			input:     "clear",
			wantTop:   "clear",
			wantUsage: []string{"clear", "clearall"},
		},
		{
			name:      "single letter",
			input:     "p",
			wantTop:   "picture",
			wantUsage: []string{"picture <id>", "pr_hpadd <amount>"},
		},
		{
			name:  "no match",
			input: "xyz",
		},
		{
			name:  "buffer with arguments matches nothing",
			input: "picture 3",
		},
		{
			name:  "metacharacters",
			input: "(*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := predictor.Predict(tt.input)
			if tt.wantTop == "" {
				assert.True(t, p.Empty())
				assert.Nil(t, p.Top)
				assert.Empty(t, p.Candidates)
				return
			}
			require.NotNil(t, p.Top)
			assert.Equal(t, tt.wantTop, p.Top.ID)
			assert.Equal(t, tt.wantUsage, p.Usages())
		})
	}
}

func TestPredictorTruncatesToMax(t *testing.T) {
	registry := NewRegistry()
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("item_%02d", i)
		require.NoError(t, registry.Register(&Command{ID: id, Usage: id + " <n>", Action: Unary(ArgInt, nil)}))
	}

	predictor := NewPredictor(registry, 4)
	p := predictor.Predict("item_")

	require.Len(t, p.Candidates, 4)
	assert.Equal(t, []string{"item_00", "item_01", "item_02", "item_03"}, p.IDs())
	assert.Equal(t, "item_00", p.Top.ID)
	assert.Equal(t, "item_00 <n>", p.Candidates[0].Usage)

	predictor.SetMaxPredictions(20)
	assert.Len(t, predictor.Predict("item_").Candidates, 15)
}

func TestPredictorDefaultMax(t *testing.T) {
	predictor := NewPredictor(NewRegistry(), 0)
	assert.Equal(t, DefaultMaxPredictions, predictor.MaxPredictions())

	predictor.SetMaxPredictions(-3)
	assert.Equal(t, DefaultMaxPredictions, predictor.MaxPredictions())
}
