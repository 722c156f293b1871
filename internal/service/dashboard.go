package service

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/herdpulse/internal/domain/models"
	"github.com/guttosm/herdpulse/internal/logger"
)

const (
	DefaultRepoTimeout       = 3 * time.Second
	DefaultRecentOrdersLimit = 5

	maxFarmerIDLen = 128

	checkupStaleMonths       = 3
	vaccinationHorizonMonths = 1
)

// Status filters for the order reads. They do not overlap, so a cancelled
// order is excluded from both the active count and the revenue.
var (
	activeStatuses  = []models.OrderStatus{models.OrderPending, models.OrderProcessing, models.OrderShipped}
	revenueStatuses = []models.OrderStatus{models.OrderDelivered}
)

// LivestockReader is the livestock read capability the dashboard needs.
type LivestockReader interface {
	FindByOwner(ctx context.Context, ownerID string) ([]models.Animal, error)
}

// OrdersReader is the order read capability the dashboard needs.
type OrdersReader interface {
	CountByStatus(ctx context.Context, sellerID string, statuses []models.OrderStatus) (int, error)
	FindByStatus(ctx context.Context, sellerID string, statuses []models.OrderStatus) ([]models.Order, error)
	FindRecent(ctx context.Context, sellerID string, limit int) ([]models.Order, error)
	FindAll(ctx context.Context, sellerID string) ([]models.Order, error)
}

// DashboardService computes the farmer dashboard from livestock and order records.
type DashboardService interface {
	GetDashboard(ctx context.Context, farmerID string) (*models.Dashboard, error)
}

// Option customizes a DashboardService.
type Option func(*dashboardService)

// WithRepoTimeout sets the deadline applied to every repository call.
func WithRepoTimeout(d time.Duration) Option {
	return func(s *dashboardService) {
		if d > 0 {
			s.repoTimeout = d
		}
	}
}

// WithRecentOrdersLimit sets how many recent orders are returned.
func WithRecentOrdersLimit(n int) Option {
	return func(s *dashboardService) {
		if n > 0 {
			s.recentLimit = n
		}
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *dashboardService) {
		if now != nil {
			s.now = now
		}
	}
}

type dashboardService struct {
	livestock   LivestockReader
	orders      OrdersReader
	repoTimeout time.Duration
	recentLimit int
	now         func() time.Time
}

func NewDashboardService(livestock LivestockReader, orders OrdersReader, opts ...Option) DashboardService {
	s := &dashboardService{
		livestock:   livestock,
		orders:      orders,
		repoTimeout: DefaultRepoTimeout,
		recentLimit: DefaultRecentOrdersLimit,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetDashboard validates the farmer id, issues the five independent reads
// concurrently and assembles the dashboard.
//
// Behavior:
//   - Returns ErrInvalidArgument for a missing or malformed id without touching the repositories.
//   - Any failed, timed-out or cancelled read cancels the others and returns ErrRepositoryUnavailable.
//   - Never returns a partially populated dashboard.
func (s *dashboardService) GetDashboard(ctx context.Context, farmerID string) (*models.Dashboard, error) {
	id, err := normalizeFarmerID(farmerID)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	now := s.now()

	var (
		animals   []models.Animal
		active    int
		recent    []models.Order
		delivered []models.Order
		all       []models.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		animals, err = fetch(gctx, s.repoTimeout, "animals", func(c context.Context) ([]models.Animal, error) {
			return s.livestock.FindByOwner(c, id)
		})
		return err
	})
	g.Go(func() (err error) {
		active, err = fetch(gctx, s.repoTimeout, "active_orders", func(c context.Context) (int, error) {
			return s.orders.CountByStatus(c, id, activeStatuses)
		})
		return err
	})
	g.Go(func() (err error) {
		recent, err = fetch(gctx, s.repoTimeout, "recent_orders", func(c context.Context) ([]models.Order, error) {
			return s.orders.FindRecent(c, id, s.recentLimit)
		})
		return err
	})
	g.Go(func() (err error) {
		delivered, err = fetch(gctx, s.repoTimeout, "delivered_orders", func(c context.Context) ([]models.Order, error) {
			return s.orders.FindByStatus(c, id, revenueStatuses)
		})
		return err
	})
	g.Go(func() (err error) {
		all, err = fetch(gctx, s.repoTimeout, "all_orders", func(c context.Context) ([]models.Order, error) {
			return s.orders.FindAll(c, id)
		})
		return err
	})
	if err := g.Wait(); err != nil {
		logger.L().Warn().Str("farmer_id", id).Err(err).Msg("dashboard aborted")
		return nil, err
	}

	d := &models.Dashboard{
		FarmerID:             id,
		TotalAnimals:         len(animals),
		HealthSummary:        summarizeHealth(animals, now),
		UpcomingVaccinations: upcomingVaccinations(animals, now),
		ActiveOrders:         active,
		RecentOrders:         sortRecent(recent, s.recentLimit),
		TotalRevenue:         sumRevenue(delivered),
		MostSoldProduct:      mostSoldProduct(all),
	}

	logger.L().Debug().
		Str("farmer_id", id).
		Int("animals", d.TotalAnimals).
		Int("orders", len(all)).
		Dur("elapsed", time.Since(started)).
		Msg("dashboard computed")

	return d, nil
}

// fetch runs one repository call under its own timeout. It returns as soon as
// ctx is done even if the repository does not honor cancellation.
func fetch[T any](ctx context.Context, timeout time.Duration, read string, call func(context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := call(callCtx)
		done <- result{val: v, err: err}
	}()

	var zero T
	select {
	case r := <-done:
		if r.err != nil {
			logger.L().Warn().Str("read", read).Err(r.err).Msg("repository read failed")
			return zero, repositoryUnavailable(read, r.err)
		}
		return r.val, nil
	case <-callCtx.Done():
		return zero, repositoryUnavailable(read, callCtx.Err())
	}
}

func normalizeFarmerID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", invalidArgument("farmer id is required")
	}
	if len(id) > maxFarmerIDLen {
		return "", invalidArgument("farmer id is too long")
	}
	if strings.IndexFunc(id, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return "", invalidArgument("farmer id contains invalid characters")
	}
	return id, nil
}

// summarizeHealth tallies health statuses and, independently, stale checkups.
// A checkup strictly older than now minus three months is stale.
func summarizeHealth(animals []models.Animal, now time.Time) models.HealthSummary {
	staleBefore := now.AddDate(0, -checkupStaleMonths, 0)

	var sum models.HealthSummary
	for _, a := range animals {
		switch a.Health() {
		case models.HealthHealthy:
			sum.Healthy++
		case models.HealthSick:
			sum.Sick++
		}
		if a.LastCheckup == nil || a.LastCheckup.Before(staleBefore) {
			sum.NeedsCheckup++
		}
	}
	return sum
}

// upcomingVaccinations selects entries due in [now, now+1 month], both ends inclusive,
// ordered by due date, animal id and vaccine name.
func upcomingVaccinations(animals []models.Animal, now time.Time) []models.UpcomingVaccination {
	horizon := now.AddDate(0, vaccinationHorizonMonths, 0)

	out := make([]models.UpcomingVaccination, 0)
	for _, a := range animals {
		for _, v := range a.Vaccinations {
			if v.NextDueAt == nil {
				continue
			}
			due := *v.NextDueAt
			if due.Before(now) || due.After(horizon) {
				continue
			}
			out = append(out, models.UpcomingVaccination{
				AnimalID:    a.ID,
				AnimalName:  a.Name,
				VaccineName: v.Name,
				DueAt:       due,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DueAt.Equal(out[j].DueAt) {
			return out[i].DueAt.Before(out[j].DueAt)
		}
		if out[i].AnimalID != out[j].AnimalID {
			return out[i].AnimalID < out[j].AnimalID
		}
		return out[i].VaccineName < out[j].VaccineName
	})
	return out
}

// sortRecent orders newest first (ties by id) and caps the list at limit.
func sortRecent(orders []models.Order, limit int) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// sumRevenue adds up delivered orders. Other statuses are skipped even if the
// reader returns them.
func sumRevenue(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.Status != models.OrderDelivered {
			continue
		}
		total = total.Add(o.TotalAmount)
	}
	return total
}

type productAcc struct {
	sales  models.ProductSales
	nameAt time.Time
}

// mostSoldProduct accumulates quantity per product id over every order in one
// pass and picks the highest total; ties go to the lowest product id.
// The reported name is the one used on the most recent order for the product.
func mostSoldProduct(orders []models.Order) *models.ProductSales {
	acc := make(map[string]*productAcc)
	for _, o := range orders {
		for _, it := range o.Items {
			p, ok := acc[it.ProductID]
			if !ok {
				p = &productAcc{sales: models.ProductSales{ProductID: it.ProductID, Name: it.Name, TotalRevenue: decimal.Zero}, nameAt: o.CreatedAt}
				acc[it.ProductID] = p
			} else if o.CreatedAt.After(p.nameAt) {
				p.sales.Name = it.Name
				p.nameAt = o.CreatedAt
			}
			p.sales.TotalQuantity += it.Quantity
			p.sales.TotalRevenue = p.sales.TotalRevenue.Add(it.Subtotal)
		}
	}

	var best *productAcc
	for _, p := range acc {
		if best == nil ||
			p.sales.TotalQuantity > best.sales.TotalQuantity ||
			(p.sales.TotalQuantity == best.sales.TotalQuantity && p.sales.ProductID < best.sales.ProductID) {
			best = p
		}
	}
	if best == nil {
		return nil
	}
	out := best.sales
	return &out
}
