// Package loottable provides persistence for named loot tables. A table is
// a taxonomy document plus identity and timestamps; generation itself never
// touches storage.
package loottable

//go:generate mockgen -destination=mock/mock_repository.go -package=loottablemock github.com/edover/praeda-go/internal/repositories/loot_table Repository

import (
	"context"
	"time"

	"github.com/edover/praeda-go/internal/taxonomy"
)

// Table is a stored taxonomy with identity.
type Table struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Document  taxonomy.Document `json:"document"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Repository defines the interface for loot table persistence
type Repository interface {
	// Save creates or replaces a table. A missing ID gets one assigned.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a table by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the table doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all stored tables
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a table by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the table doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a table
type SaveInput struct {
	Table *Table
}

// SaveOutput returns the stored table with ID and timestamps filled in
type SaveOutput struct {
	Table *Table
}

// GetInput defines the input for getting a table
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a table
type GetOutput struct {
	Table *Table
}

// ListInput defines the input for listing tables
type ListInput struct{}

// ListOutput defines the output for listing tables
type ListOutput struct {
	Tables []*Table
}

// DeleteInput defines the input for deleting a table
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a table
type DeleteOutput struct{}
