package loottable

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/edover/praeda-go/internal/errors"
	"github.com/edover/praeda-go/internal/pkg/clock"
	"github.com/edover/praeda-go/internal/pkg/idgen"
	redisclient "github.com/edover/praeda-go/internal/redis"
)

const (
	tableKeyPrefix = "loot_table:"
	tableIndexKey  = "loot_table:index"

	errTableNil     = "table cannot be nil"
	errTableIDEmpty = "table ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idgen  idgen.Generator
}

// RedisConfig contains configuration for the Redis loot table repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	IDGen  idgen.Generator
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed loot table repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID("table")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idgen:  gen,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Table == nil {
		return nil, errors.InvalidArgument(errTableNil)
	}
	if input.Table.Name == "" {
		return nil, errors.InvalidArgument("table name cannot be empty")
	}

	table := *input.Table
	now := r.clock.Now().UTC()
	if table.ID == "" {
		table.ID = r.idgen.Generate()
		table.CreatedAt = now
	} else if table.CreatedAt.IsZero() {
		// Replacing an existing record keeps its original creation time.
		if existing, err := r.Get(ctx, GetInput{ID: table.ID}); err == nil {
			table.CreatedAt = existing.Table.CreatedAt
		} else if !errors.IsNotFound(err) {
			return nil, err
		} else {
			table.CreatedAt = now
		}
	}
	table.UpdatedAt = now

	data, err := json.Marshal(&table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal table %s", table.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, tableKeyPrefix+table.ID, data, 0)
	pipe.SAdd(ctx, tableIndexKey, table.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save table %s", table.ID)
	}

	return &SaveOutput{Table: &table}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTableIDEmpty)
	}

	result, err := r.client.Get(ctx, tableKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("loot table %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get table %s", input.ID)
	}

	var table Table
	if err := json.Unmarshal([]byte(result), &table); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal table %s", input.ID)
	}

	return &GetOutput{Table: &table}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, tableIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list tables")
	}

	tables := make([]*Table, 0, len(ids))
	for _, id := range ids {
		output, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// An index entry without a record means a torn delete; skip it.
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		tables = append(tables, output.Table)
	}

	return &ListOutput{Tables: tables}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTableIDEmpty)
	}

	deleted, err := r.client.Del(ctx, tableKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete table %s", input.ID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("loot table %s not found", input.ID)
	}

	if err := r.client.SRem(ctx, tableIndexKey, input.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to remove table %s from index", input.ID)
	}

	return &DeleteOutput{}, nil
}
