// Package loot implements the loot orchestrator: stored table management,
// generation against stored tables, and retained batch lookup.
package loot

//go:generate mockgen -destination=mock/mock_service.go -package=lootmock github.com/edover/praeda-go/internal/orchestrators/loot Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/edover/praeda-go/internal/engine"
	lootent "github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/errors"
	loottable "github.com/edover/praeda-go/internal/repositories/loot_table"
	"github.com/edover/praeda-go/internal/taxonomy"
)

// Service defines the interface for loot operations
type Service interface {
	// Table management
	SaveTable(ctx context.Context, input *SaveTableInput) (*SaveTableOutput, error)
	GetTable(ctx context.Context, input *GetTableInput) (*GetTableOutput, error)
	ListTables(ctx context.Context, input *ListTablesInput) (*ListTablesOutput, error)
	DeleteTable(ctx context.Context, input *DeleteTableInput) (*DeleteTableOutput, error)

	// Generation
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	GetBatch(ctx context.Context, input *GetBatchInput) (*GetBatchOutput, error)
}

// Config holds the dependencies for the loot orchestrator
type Config struct {
	TableRepo loottable.Repository
	Engine    engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.TableRepo == nil {
		vb.RequiredField("TableRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	tableRepo loottable.Repository
	engine    engine.Engine

	mu      sync.Mutex
	batches map[string][]lootent.Item
}

// NewOrchestrator creates a new loot orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		tableRepo: cfg.TableRepo,
		engine:    cfg.Engine,
		batches:   make(map[string][]lootent.Item),
	}, nil
}

func (o *orchestrator) SaveTable(ctx context.Context, input *SaveTableInput) (*SaveTableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("table name is required")
	}

	// Reject documents that would fail at generation time.
	if _, err := taxonomy.FromDocument(input.Document); err != nil {
		return nil, errors.Wrap(err, "invalid taxonomy document")
	}

	output, err := o.tableRepo.Save(ctx, loottable.SaveInput{
		Table: &loottable.Table{
			ID:       input.TableID,
			Name:     input.Name,
			Document: input.Document,
		},
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "saved loot table",
		"table_id", output.Table.ID,
		"name", output.Table.Name,
	)

	return &SaveTableOutput{Table: output.Table}, nil
}

func (o *orchestrator) GetTable(ctx context.Context, input *GetTableInput) (*GetTableOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}

	output, err := o.tableRepo.Get(ctx, loottable.GetInput{ID: input.TableID})
	if err != nil {
		return nil, err
	}

	return &GetTableOutput{Table: output.Table}, nil
}

func (o *orchestrator) ListTables(ctx context.Context, _ *ListTablesInput) (*ListTablesOutput, error) {
	output, err := o.tableRepo.List(ctx, loottable.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListTablesOutput{Tables: output.Tables}, nil
}

func (o *orchestrator) DeleteTable(ctx context.Context, input *DeleteTableInput) (*DeleteTableOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}

	if _, err := o.tableRepo.Delete(ctx, loottable.DeleteInput{ID: input.TableID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted loot table", "table_id", input.TableID)

	return &DeleteTableOutput{}, nil
}

func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TableID == "" {
		return nil, errors.InvalidArgument("table ID is required")
	}

	tableOutput, err := o.tableRepo.Get(ctx, loottable.GetInput{ID: input.TableID})
	if err != nil {
		return nil, err
	}

	store, err := taxonomy.FromDocument(tableOutput.Table.Document)
	if err != nil {
		return nil, errors.Wrapf(err, "rebuilding taxonomy for table %s", input.TableID)
	}

	genOutput, err := o.engine.Generate(ctx, &engine.GenerateInput{
		Store:     store,
		Options:   input.Options,
		Overrides: input.Overrides,
	})
	if err != nil {
		slog.ErrorContext(ctx, "loot generation failed",
			"table_id", input.TableID,
			"error", err,
		)
		return nil, err
	}

	if input.BatchKey != "" {
		o.mu.Lock()
		o.batches[input.BatchKey] = genOutput.Items
		o.mu.Unlock()
	}

	slog.InfoContext(ctx, "generated loot",
		"table_id", input.TableID,
		"items", len(genOutput.Items),
		"batch_key", input.BatchKey,
	)

	return &GenerateOutput{Items: genOutput.Items}, nil
}

func (o *orchestrator) GetBatch(_ context.Context, input *GetBatchInput) (*GetBatchOutput, error) {
	if input == nil || input.BatchKey == "" {
		return nil, errors.InvalidArgument("batch key is required")
	}

	o.mu.Lock()
	items, ok := o.batches[input.BatchKey]
	o.mu.Unlock()
	if !ok {
		return nil, errors.NotFoundf("no batch retained under key %q", input.BatchKey)
	}

	return &GetBatchOutput{Items: items}, nil
}
