// Package engine generates loot items from a configured taxonomy: weighted
// quality/type/subtype selection, uniform name selection, level-scaled
// attribute synthesis, and probabilistic prefix/suffix assignment.
package engine

import (
	"context"

	"github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/taxonomy"
)

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/edover/praeda-go/internal/engine Engine

// GenerateInput carries one generation request.
type GenerateInput struct {
	// Taxonomy to generate from; must not be mutated during the call
	Store *taxonomy.Store

	// Generation parameters; use loot.DefaultOptions() for the defaults
	Options loot.Options

	// Optional stage pins; empty fields keep random selection
	Overrides loot.Overrides
}

// GenerateOutput carries a fully generated batch. Batches are
// all-or-nothing: on error no items are returned.
type GenerateOutput struct {
	Items []loot.Item
}

// Engine defines the loot generation interface
type Engine interface {
	// Generate produces Options.NumberOfItems items or fails with a
	// generation error identifying the stage and scope that failed
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}
