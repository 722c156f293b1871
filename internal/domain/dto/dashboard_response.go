package dto

import (
	"time"

	"github.com/guttosm/herdpulse/internal/domain/models"
)

// DashboardResponse represents the JSON structure returned by the
// GET /api/v1/farmers/{farmerId}/dashboard endpoint.
//
// Field names follow the public contract consumed by the dashboard page and
// intentionally differ from the internal models (e.g. totalCattle).
type DashboardResponse struct {
	TotalCattle          int                           `json:"totalCattle" example:"12"`
	ActiveOrders         int                           `json:"activeOrders" example:"3"`
	TotalRevenue         float64                       `json:"totalRevenue" example:"1520.50"`
	MostSoldProduct      *MostSoldProductResponse      `json:"mostSoldProduct"`
	RecentOrders         []RecentOrderResponse         `json:"recentOrders"`
	CattleHealthSummary  HealthSummaryResponse         `json:"cattleHealthSummary"`
	UpcomingVaccinations []UpcomingVaccinationResponse `json:"upcomingVaccinations"`
}

// MostSoldProductResponse is the top product by summed quantity.
type MostSoldProductResponse struct {
	ProductID     string  `json:"productId" example:"milk-1l"`
	Name          string  `json:"name" example:"Fresh milk 1L"`
	TotalQuantity int     `json:"totalQuantity" example:"40"`
	TotalRevenue  float64 `json:"totalRevenue" example:"800"`
}

// RecentOrderResponse is one entry of the recent orders list.
type RecentOrderResponse struct {
	OrderID     string             `json:"orderId" example:"o-1001"`
	BuyerID     string             `json:"buyerId" example:"buyer-7"`
	TotalAmount float64            `json:"totalAmount" example:"120"`
	Status      string             `json:"status" example:"shipped"`
	CreatedAt   time.Time          `json:"createdAt"`
	Items       []LineItemResponse `json:"items"`
}

// LineItemResponse is a product line inside a recent order.
type LineItemResponse struct {
	ProductID string  `json:"productId" example:"milk-1l"`
	Name      string  `json:"name" example:"Fresh milk 1L"`
	Quantity  int     `json:"quantity" example:"3"`
	Subtotal  float64 `json:"subtotal" example:"60"`
}

// HealthSummaryResponse carries the herd health counters.
type HealthSummaryResponse struct {
	Healthy      int `json:"healthy" example:"10"`
	Sick         int `json:"sick" example:"2"`
	NeedsCheckup int `json:"needsCheckup" example:"4"`
}

// UpcomingVaccinationResponse is a vaccination due within the next month.
type UpcomingVaccinationResponse struct {
	CattleID    string    `json:"cattleId" example:"a-001"`
	CattleName  string    `json:"cattleName" example:"Gauri"`
	VaccineName string    `json:"vaccineName" example:"FMD"`
	DueDate     time.Time `json:"dueDate"`
}

// NewDashboardResponse maps the domain dashboard into the wire format.
// Slices are always non-nil so they serialize as [] rather than null.
func NewDashboardResponse(d *models.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		TotalCattle:  d.TotalAnimals,
		ActiveOrders: d.ActiveOrders,
		TotalRevenue: d.TotalRevenue.InexactFloat64(),
		CattleHealthSummary: HealthSummaryResponse{
			Healthy:      d.HealthSummary.Healthy,
			Sick:         d.HealthSummary.Sick,
			NeedsCheckup: d.HealthSummary.NeedsCheckup,
		},
		RecentOrders:         make([]RecentOrderResponse, 0, len(d.RecentOrders)),
		UpcomingVaccinations: make([]UpcomingVaccinationResponse, 0, len(d.UpcomingVaccinations)),
	}

	if p := d.MostSoldProduct; p != nil {
		resp.MostSoldProduct = &MostSoldProductResponse{
			ProductID:     p.ProductID,
			Name:          p.Name,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue.InexactFloat64(),
		}
	}

	for _, o := range d.RecentOrders {
		items := make([]LineItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, LineItemResponse{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				Subtotal:  it.Subtotal.InexactFloat64(),
			})
		}
		resp.RecentOrders = append(resp.RecentOrders, RecentOrderResponse{
			OrderID:     o.ID,
			BuyerID:     o.BuyerID,
			TotalAmount: o.TotalAmount.InexactFloat64(),
			Status:      string(o.Status),
			CreatedAt:   o.CreatedAt,
			Items:       items,
		})
	}

	for _, v := range d.UpcomingVaccinations {
		resp.UpcomingVaccinations = append(resp.UpcomingVaccinations, UpcomingVaccinationResponse{
			CattleID:    v.AnimalID,
			CattleName:  v.AnimalName,
			VaccineName: v.VaccineName,
			DueDate:     v.DueAt,
		})
	}

	return resp
}
