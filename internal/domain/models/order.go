package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. Transitions are driven by
// the order-management flows; this service only reads the current value.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order represents a sales transaction where the farmer is the seller.
type Order struct {
	ID          string          `json:"id" example:"o-1001"`
	SellerID    string          `json:"sellerId" example:"farmer-42"`
	BuyerID     string          `json:"buyerId" example:"buyer-7"`
	Status      OrderStatus     `json:"status" example:"delivered"`
	Items       []LineItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// LineItem is a single product line of an order.
type LineItem struct {
	ProductID string          `json:"productId" example:"milk-1l"`
	Name      string          `json:"name" example:"Fresh milk 1L"`
	Quantity  int             `json:"quantity" example:"3"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ItemsTotal returns the sum of the line-item subtotals.
func (o Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Subtotal)
	}
	return sum
}

// StatusStrings converts a status set into plain strings, e.g. for SQL array parameters.
func StatusStrings(statuses []OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
