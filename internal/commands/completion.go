// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// DefaultMaxPredictions is the prediction list length used when none is configured.
const DefaultMaxPredictions = 10

// =============================================================================
// PREDICTION TYPES
// =============================================================================

// Candidate is one entry of the prediction list.
type Candidate struct {
	Command *Command

	// Usage is what the view displays and what Submit compares the buffer against
	Usage string
}

// Prediction is the result of one recomputation. The zero value means
// "no predictions".
type Prediction struct {
	// Top is the first match in registration order
	Top *Command

	// Candidates are the matches, truncated to the configured maximum
	Candidates []Candidate
}

// Empty reports whether there is nothing to suggest.
func (p Prediction) Empty() bool {
	return p.Top == nil
}

// Usages returns the display strings of the candidates.
func (p Prediction) Usages() []string {
	usages := make([]string, len(p.Candidates))
	for i, c := range p.Candidates {
		usages[i] = c.Usage
	}
	return usages
}

// IDs returns the bare command ids of the candidates.
func (p Prediction) IDs() []string {
	ids := make([]string, len(p.Candidates))
	for i, c := range p.Candidates {
		ids[i] = c.Command.ID
	}
	return ids
}

// =============================================================================
// PREDICTOR
// =============================================================================

// Predictor computes autocomplete candidates from the edit buffer.
type Predictor struct {
	registry       *Registry
	maxPredictions int
}

// NewPredictor creates a predictor. A non-positive max uses DefaultMaxPredictions.
func NewPredictor(registry *Registry, maxPredictions int) *Predictor {
	p := &Predictor{registry: registry}
	p.SetMaxPredictions(maxPredictions)
	return p
}

// SetMaxPredictions changes the candidate list limit.
func (p *Predictor) SetMaxPredictions(n int) {
	if n <= 0 {
		n = DefaultMaxPredictions
	}
	p.maxPredictions = n
}

// MaxPredictions returns the candidate list limit.
func (p *Predictor) MaxPredictions() int {
	return p.maxPredictions
}

// Predict returns the candidates for buffer. It is a pure function of the
// registry contents and the buffer.
func (p *Predictor) Predict(buffer string) Prediction {
	if buffer == "" {
		return Prediction{}
	}

	matches := p.registry.PrefixSearch(buffer)
	if len(matches) == 0 {
		return Prediction{}
	}

	if len(matches) > p.maxPredictions {
		matches = matches[:p.maxPredictions]
	}

	candidates := make([]Candidate, len(matches))
	for i, cmd := range matches {
		candidates[i] = Candidate{Command: cmd, Usage: cmd.Usage}
	}

	return Prediction{Top: matches[0], Candidates: candidates}
}
