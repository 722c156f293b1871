package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/guttosm/herdpulse/internal/domain/models"
)

// Fixture is a JSON snapshot of livestock and order records.
//
// Example:
//
//	{
//	  "animals": [{"id": "a1", "ownerId": "farmer-42", "name": "Gauri", "vaccinations": []}],
//	  "orders":  [{"id": "o1", "sellerId": "farmer-42", "buyerId": "b1", "status": "delivered",
//	               "items": [{"productId": "milk", "name": "Milk", "quantity": 2, "subtotal": "10.00"}],
//	               "totalAmount": "10.00", "createdAt": "2026-06-01T10:00:00Z"}]
//	}
type Fixture struct {
	Animals []models.Animal `json:"animals"`
	Orders  []models.Order  `json:"orders"`
}

// Decode reads a fixture from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Fixture, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// LoadFile opens path and decodes it as a fixture.
func LoadFile(path string) (*Fixture, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = fh.Close() }()

	return Decode(fh)
}

// Normalize assigns generated ids to records without one and defaults nil
// collections to empty slices.
func (f *Fixture) Normalize() {
	for i := range f.Animals {
		if strings.TrimSpace(f.Animals[i].ID) == "" {
			f.Animals[i].ID = uuid.NewString()
		}
		if f.Animals[i].Vaccinations == nil {
			f.Animals[i].Vaccinations = []models.Vaccination{}
		}
	}
	for i := range f.Orders {
		if strings.TrimSpace(f.Orders[i].ID) == "" {
			f.Orders[i].ID = uuid.NewString()
		}
		if f.Orders[i].Items == nil {
			f.Orders[i].Items = []models.LineItem{}
		}
	}
}

// Warnings lists records that break the data invariants the dashboard
// assumes. They are reported, not rejected.
func (f *Fixture) Warnings() []string {
	var out []string
	for _, a := range f.Animals {
		for _, v := range a.Vaccinations {
			if v.NextDueAt != nil && v.NextDueAt.Before(v.AdministeredAt) {
				out = append(out, fmt.Sprintf("animal %s: vaccination %q is due before it was administered", a.ID, v.Name))
			}
		}
		switch a.HealthStatus {
		case "", models.HealthHealthy, models.HealthSick, models.HealthUnknown:
		default:
			out = append(out, fmt.Sprintf("animal %s: unknown health status %q", a.ID, a.HealthStatus))
		}
	}
	for _, o := range f.Orders {
		if !o.ItemsTotal().Equal(o.TotalAmount) {
			out = append(out, fmt.Sprintf("order %s: items sum to %s but total is %s", o.ID, o.ItemsTotal().StringFixed(2), o.TotalAmount.StringFixed(2)))
		}
		for _, it := range o.Items {
			if it.Quantity < 0 {
				out = append(out, fmt.Sprintf("order %s: product %s has negative quantity", o.ID, it.ProductID))
			}
		}
	}
	return out
}
