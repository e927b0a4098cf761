package loot

import (
	lootent "github.com/edover/praeda-go/internal/entities/loot"
	loottable "github.com/edover/praeda-go/internal/repositories/loot_table"
	"github.com/edover/praeda-go/internal/taxonomy"
)

// SaveTableInput defines the request for saving a table
type SaveTableInput struct {
	// TableID replaces an existing table when set; empty creates one
	TableID  string
	Name     string
	Document taxonomy.Document
}

// SaveTableOutput defines the response for saving a table
type SaveTableOutput struct {
	Table *loottable.Table
}

// GetTableInput defines the request for getting a table
type GetTableInput struct {
	TableID string
}

// GetTableOutput defines the response for getting a table
type GetTableOutput struct {
	Table *loottable.Table
}

// ListTablesInput defines the request for listing tables
type ListTablesInput struct{}

// ListTablesOutput defines the response for listing tables
type ListTablesOutput struct {
	Tables []*loottable.Table
}

// DeleteTableInput defines the request for deleting a table
type DeleteTableInput struct {
	TableID string
}

// DeleteTableOutput defines the response for deleting a table
type DeleteTableOutput struct{}

// GenerateInput defines the request for generating loot from a stored table
type GenerateInput struct {
	TableID   string
	Options   lootent.Options
	Overrides lootent.Overrides

	// BatchKey retains the generated batch for later retrieval when set.
	// A repeated key overwrites the previous batch.
	BatchKey string
}

// GenerateOutput defines the response for generating loot
type GenerateOutput struct {
	Items []lootent.Item
}

// GetBatchInput defines the request for fetching a retained batch
type GetBatchInput struct {
	BatchKey string
}

// GetBatchOutput defines the response for fetching a retained batch
type GetBatchOutput struct {
	Items []lootent.Item
}
