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

type ordersRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Order
}

// NewOrdersRepo returns an in-memory OrdersRepository for local runs and tests.
func NewOrdersRepo() storage.OrdersRepository {
	return &ordersRepo{byID: make(map[string]models.Order)}
}

func (r *ordersRepo) CountByStatus(ctx context.Context, sellerID string, statuses []models.OrderStatus) (int, error) {
	out, err := r.FindByStatus(ctx, sellerID, statuses)
	if err != nil {
		return 0, err
	}
	return len(out), nil
}

func (r *ordersRepo) FindByStatus(ctx context.Context, sellerID string, statuses []models.OrderStatus) ([]models.Order, error) {
	want := make(map[models.OrderStatus]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}
	return r.filter(ctx, sellerID, func(o models.Order) bool {
		_, ok := want[o.Status]
		return ok
	})
}

func (r *ordersRepo) FindRecent(ctx context.Context, sellerID string, limit int) ([]models.Order, error) {
	out, err := r.FindAll(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ordersRepo) FindAll(ctx context.Context, sellerID string) ([]models.Order, error) {
	return r.filter(ctx, sellerID, func(models.Order) bool { return true })
}

// filter returns the seller's matching orders newest first, ties by id.
func (r *ordersRepo) filter(ctx context.Context, sellerID string, keep func(models.Order) bool) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range r.byID {
		if o.SellerID == sellerID && keep(o) {
			o.Items = append([]models.LineItem(nil), o.Items...)
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// InsertOrders stores all orders or none; ids must be new and non-empty.
func (r *ordersRepo) InsertOrders(ctx context.Context, orders []models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if strings.TrimSpace(o.ID) == "" {
			return errors.New("order id required")
		}
		_, batchDup := seen[o.ID]
		if _, exists := r.byID[o.ID]; exists || batchDup {
			return fmt.Errorf("order %s: %w", o.ID, ErrDuplicateID)
		}
		seen[o.ID] = struct{}{}
	}
	for _, o := range orders {
		r.byID[o.ID] = o
	}
	return nil
}
