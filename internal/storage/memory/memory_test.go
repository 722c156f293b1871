package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/herdpulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

func TestLivestockRepo_FindByOwner(t *testing.T) {
	repo := NewLivestockRepo()
	ctx := context.Background()

	err := repo.InsertAnimals(ctx, []models.Animal{
		{ID: "b", OwnerID: "farmer-1"},
		{ID: "a", OwnerID: "farmer-1"},
		{ID: "c", OwnerID: "farmer-2"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	out, err := repo.FindByOwner(ctx, "farmer-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected animals: %+v", out)
	}
}

func TestLivestockRepo_InsertRejectsDuplicates(t *testing.T) {
	repo := NewLivestockRepo()
	ctx := context.Background()

	if err := repo.InsertAnimals(ctx, []models.Animal{{ID: "a", OwnerID: "f"}}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := repo.InsertAnimals(ctx, []models.Animal{{ID: "x", OwnerID: "f"}, {ID: "a", OwnerID: "f"}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("want ErrDuplicateID, got %v", err)
	}
	// all-or-nothing: "x" must not have been stored
	out, _ := repo.FindByOwner(ctx, "f")
	if len(out) != 1 {
		t.Fatalf("partial insert leaked: %+v", out)
	}
	if err := repo.InsertAnimals(ctx, []models.Animal{{ID: " "}}); err == nil {
		t.Fatalf("expected error for blank id")
	}
}

func TestOrdersRepo_Queries(t *testing.T) {
	repo := NewOrdersRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	orders := []models.Order{
		{ID: "o1", SellerID: "s", Status: models.OrderDelivered, CreatedAt: base, TotalAmount: decimal.NewFromInt(10)},
		{ID: "o2", SellerID: "s", Status: models.OrderPending, CreatedAt: base.Add(time.Hour)},
		{ID: "o3", SellerID: "s", Status: models.OrderShipped, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "o0", SellerID: "s", Status: models.OrderCancelled, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "x1", SellerID: "other", Status: models.OrderPending, CreatedAt: base},
	}
	if err := repo.InsertOrders(ctx, orders); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := repo.CountByStatus(ctx, "s", []models.OrderStatus{models.OrderPending, models.OrderProcessing, models.OrderShipped})
	if err != nil || n != 2 {
		t.Fatalf("count: n=%d err=%v", n, err)
	}

	delivered, err := repo.FindByStatus(ctx, "s", []models.OrderStatus{models.OrderDelivered})
	if err != nil || len(delivered) != 1 || delivered[0].ID != "o1" {
		t.Fatalf("delivered: %+v err=%v", delivered, err)
	}

	recent, err := repo.FindRecent(ctx, "s", 2)
	if err != nil || len(recent) != 2 {
		t.Fatalf("recent: %+v err=%v", recent, err)
	}
	// equal timestamps fall back to id order
	if recent[0].ID != "o0" || recent[1].ID != "o3" {
		t.Fatalf("unexpected recent order: %s, %s", recent[0].ID, recent[1].ID)
	}

	all, err := repo.FindAll(ctx, "s")
	if err != nil || len(all) != 4 {
		t.Fatalf("all: n=%d err=%v", len(all), err)
	}
}

func TestRepos_HonorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLivestockRepo().FindByOwner(ctx, "f"); !errors.Is(err, context.Canceled) {
		t.Fatalf("livestock: want context.Canceled, got %v", err)
	}
	if _, err := NewOrdersRepo().FindAll(ctx, "f"); !errors.Is(err, context.Canceled) {
		t.Fatalf("orders: want context.Canceled, got %v", err)
	}
	if _, err := NewOrdersRepo().CountByStatus(ctx, "f", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("count: want context.Canceled, got %v", err)
	}
}
