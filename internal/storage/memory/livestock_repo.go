package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/guttosm/herdpulse/internal/domain/models"
	"github.com/guttosm/herdpulse/internal/storage"
)

var ErrDuplicateID = errors.New("duplicate id")

type livestockRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Animal
}

// NewLivestockRepo returns an in-memory LivestockRepository for local runs and tests.
func NewLivestockRepo() storage.LivestockRepository {
	return &livestockRepo{byID: make(map[string]models.Animal)}
}

func (r *livestockRepo) FindByOwner(ctx context.Context, ownerID string) ([]models.Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Animal, 0)
	for _, a := range r.byID {
		if a.OwnerID == ownerID {
			a.Vaccinations = append([]models.Vaccination(nil), a.Vaccinations...)
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// InsertAnimals stores all animals or none; ids must be new and non-empty.
func (r *livestockRepo) InsertAnimals(ctx context.Context, animals []models.Animal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(animals))
	for _, a := range animals {
		if strings.TrimSpace(a.ID) == "" {
			return errors.New("animal id required")
		}
		_, batchDup := seen[a.ID]
		if _, exists := r.byID[a.ID]; exists || batchDup {
			return fmt.Errorf("animal %s: %w", a.ID, ErrDuplicateID)
		}
		seen[a.ID] = struct{}{}
	}
	for _, a := range animals {
		r.byID[a.ID] = a
	}
	return nil
}
