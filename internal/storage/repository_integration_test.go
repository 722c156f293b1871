//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/guttosm/herdpulse/db"
	"github.com/guttosm/herdpulse/internal/domain/models"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "herdpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=herdpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "herdpulse")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openAndMigrate(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	if err := goose.Up(conn, db.MigrationsDir); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	return conn
}

func TestRepositories_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	conn := openAndMigrate(t, dsn)
	defer conn.Close()

	ctx := context.Background()
	livestock := NewLivestockRepository(conn)
	orders := NewOrdersRepository(conn)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	due := base.AddDate(0, 0, 10)
	checkup := base.AddDate(0, -1, 0)

	animals := []models.Animal{
		{ID: "a1", OwnerID: "farmer-1", Name: "Gauri", HealthStatus: models.HealthSick, LastCheckup: &checkup,
			Vaccinations: []models.Vaccination{{Name: "FMD", AdministeredAt: base.AddDate(0, -6, 0), NextDueAt: &due}}},
		{ID: "a2", OwnerID: "farmer-1", Name: "Nandi"},
		{ID: "a3", OwnerID: "farmer-2", Name: "Other"},
	}
	if err := livestock.InsertAnimals(ctx, animals); err != nil {
		t.Fatalf("InsertAnimals: %v", err)
	}

	var seeded []models.Order
	statuses := []models.OrderStatus{models.OrderDelivered, models.OrderPending, models.OrderCancelled, models.OrderShipped}
	for i, st := range statuses {
		amount := decimal.NewFromInt(int64(10 * (i + 1)))
		seeded = append(seeded, models.Order{
			ID: fmt.Sprintf("o%d", i+1), SellerID: "farmer-1", BuyerID: "b1", Status: st,
			Items:       []models.LineItem{{ProductID: "p1", Name: "Milk", Quantity: i + 1, Subtotal: amount}},
			TotalAmount: amount,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
	}
	if err := orders.InsertOrders(ctx, seeded); err != nil {
		t.Fatalf("InsertOrders: %v", err)
	}

	t.Run("find by owner", func(t *testing.T) {
		out, err := livestock.FindByOwner(ctx, "farmer-1")
		if err != nil || len(out) != 2 {
			t.Fatalf("FindByOwner: n=%d err=%v", len(out), err)
		}
		if out[0].ID != "a1" || len(out[0].Vaccinations) != 1 || out[1].Health() != models.HealthUnknown {
			t.Fatalf("unexpected animals: %+v", out)
		}
	})

	t.Run("count active", func(t *testing.T) {
		n, err := orders.CountByStatus(ctx, "farmer-1", []models.OrderStatus{models.OrderPending, models.OrderProcessing, models.OrderShipped})
		if err != nil || n != 2 {
			t.Fatalf("CountByStatus: n=%d err=%v", n, err)
		}
	})

	t.Run("delivered only", func(t *testing.T) {
		out, err := orders.FindByStatus(ctx, "farmer-1", []models.OrderStatus{models.OrderDelivered})
		if err != nil || len(out) != 1 || !out[0].TotalAmount.Equal(decimal.NewFromInt(10)) {
			t.Fatalf("FindByStatus: %+v err=%v", out, err)
		}
	})

	t.Run("recent ordering and limit", func(t *testing.T) {
		out, err := orders.FindRecent(ctx, "farmer-1", 3)
		if err != nil || len(out) != 3 {
			t.Fatalf("FindRecent: n=%d err=%v", len(out), err)
		}
		if out[0].ID != "o4" || out[2].ID != "o2" {
			t.Fatalf("unexpected order: %s..%s", out[0].ID, out[2].ID)
		}
	})

	t.Run("all orders", func(t *testing.T) {
		out, err := orders.FindAll(ctx, "farmer-1")
		if err != nil || len(out) != 4 {
			t.Fatalf("FindAll: n=%d err=%v", len(out), err)
		}
		if other, _ := orders.FindAll(ctx, "farmer-2"); len(other) != 0 {
			t.Fatalf("expected no orders for farmer-2, got %d", len(other))
		}
	})
}
