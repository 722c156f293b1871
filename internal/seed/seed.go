package seed

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/herdpulse/internal/domain/models"
	"github.com/guttosm/herdpulse/internal/logger"
	"github.com/guttosm/herdpulse/internal/storage"
)

const (
	DefaultBatchSize = 500
	maxParallel      = 4
)

// AnimalWriter bulk-inserts animals.
type AnimalWriter interface {
	InsertAnimals(ctx context.Context, animals []models.Animal) error
}

// OrderWriter bulk-inserts orders.
type OrderWriter interface {
	InsertOrders(ctx context.Context, orders []models.Order) error
}

// repoCtor is an indirection for creating the Postgres repositories; tests can override this.
var repoCtor = func(db *sql.DB) (AnimalWriter, OrderWriter) {
	return storage.NewLivestockRepository(db), storage.NewOrdersRepository(db)
}

// Stats reports how many records a load wrote.
type Stats struct {
	Animals  int
	Orders   int
	Warnings int
}

// ProcessFile loads the fixture at path into PostgreSQL.
//
// Behavior:
//   - Decodes and normalizes the fixture, logging every invariant warning.
//   - Writes animals and orders in batches through the repositories.
//   - The first failing batch cancels the rest and its error is returned.
func ProcessFile(ctx context.Context, path string, db *sql.DB, batchSize int) (Stats, error) {
	f, err := LoadFile(path)
	if err != nil {
		return Stats{}, err
	}
	animals, orders := repoCtor(db)
	return Apply(ctx, f, animals, orders, batchSize)
}

// Apply writes a fixture through the given writers, batching and running up
// to a few batches concurrently.
func Apply(ctx context.Context, f *Fixture, animals AnimalWriter, orders OrderWriter, batchSize int) (Stats, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	start := time.Now()

	f.Normalize()
	warnings := f.Warnings()
	for _, w := range warnings {
		logger.L().Warn().Str("record", w).Msg("fixture invariant violated")
	}

	parallel := maxParallel
	if c := runtime.NumCPU(); c < parallel {
		parallel = c
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, batch := range chunk(f.Animals, batchSize) {
		idx, b := i, batch
		g.Go(func() error {
			if err := animals.InsertAnimals(gctx, b); err != nil {
				logger.L().Error().Int("batch", idx).Err(err).Msg("animal batch failed")
				return fmt.Errorf("animals batch %d: %w", idx, err)
			}
			return nil
		})
	}
	for i, batch := range chunk(f.Orders, batchSize) {
		idx, b := i, batch
		g.Go(func() error {
			if err := orders.InsertOrders(gctx, b); err != nil {
				logger.L().Error().Int("batch", idx).Err(err).Msg("order batch failed")
				return fmt.Errorf("orders batch %d: %w", idx, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{Animals: len(f.Animals), Orders: len(f.Orders), Warnings: len(warnings)}
	logger.L().Info().
		Int("animals", stats.Animals).
		Int("orders", stats.Orders).
		Int("warnings", stats.Warnings).
		Dur("elapsed", time.Since(start)).
		Msg("seed completed")
	return stats, nil
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size:size])
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
