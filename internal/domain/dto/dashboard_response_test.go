package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/herdpulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

func TestNewDashboardResponse_EmptyDashboard(t *testing.T) {
	resp := NewDashboardResponse(&models.Dashboard{TotalRevenue: decimal.Zero})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, want := range []string{
		`"totalCattle":0`,
		`"activeOrders":0`,
		`"totalRevenue":0`,
		`"mostSoldProduct":null`,
		`"recentOrders":[]`,
		`"upcomingVaccinations":[]`,
		`"cattleHealthSummary":{"healthy":0,"sick":0,"needsCheckup":0}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body %s does not contain %s", body, want)
		}
	}
}

func TestNewDashboardResponse_MapsFields(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	d := &models.Dashboard{
		TotalAnimals:  2,
		ActiveOrders:  1,
		TotalRevenue:  decimal.RequireFromString("150.25"),
		HealthSummary: models.HealthSummary{Healthy: 1, Sick: 1, NeedsCheckup: 2},
		MostSoldProduct: &models.ProductSales{
			ProductID: "p1", Name: "Milk", TotalQuantity: 7, TotalRevenue: decimal.NewFromInt(70),
		},
		RecentOrders: []models.Order{{
			ID: "o1", BuyerID: "b1", Status: models.OrderShipped, CreatedAt: created,
			TotalAmount: decimal.NewFromInt(20),
			Items:       []models.LineItem{{ProductID: "p1", Name: "Milk", Quantity: 2, Subtotal: decimal.NewFromInt(20)}},
		}},
		UpcomingVaccinations: []models.UpcomingVaccination{{AnimalID: "a1", AnimalName: "Gauri", VaccineName: "FMD", DueAt: due}},
	}

	resp := NewDashboardResponse(d)
	if resp.TotalCattle != 2 || resp.ActiveOrders != 1 || resp.TotalRevenue != 150.25 {
		t.Fatalf("unexpected scalars: %+v", resp)
	}
	if resp.MostSoldProduct == nil || resp.MostSoldProduct.ProductID != "p1" || resp.MostSoldProduct.TotalRevenue != 70 {
		t.Fatalf("unexpected most sold: %+v", resp.MostSoldProduct)
	}
	if len(resp.RecentOrders) != 1 || resp.RecentOrders[0].OrderID != "o1" || resp.RecentOrders[0].Status != "shipped" {
		t.Fatalf("unexpected recent orders: %+v", resp.RecentOrders)
	}
	if len(resp.RecentOrders[0].Items) != 1 || resp.RecentOrders[0].Items[0].Subtotal != 20 {
		t.Fatalf("unexpected items: %+v", resp.RecentOrders[0].Items)
	}
	if len(resp.UpcomingVaccinations) != 1 || resp.UpcomingVaccinations[0].CattleName != "Gauri" || !resp.UpcomingVaccinations[0].DueDate.Equal(due) {
		t.Fatalf("unexpected vaccinations: %+v", resp.UpcomingVaccinations)
	}
	if resp.CattleHealthSummary != (HealthSummaryResponse{Healthy: 1, Sick: 1, NeedsCheckup: 2}) {
		t.Fatalf("unexpected health summary: %+v", resp.CattleHealthSummary)
	}
}
