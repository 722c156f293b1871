package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard is the derived, unstored view of one farmer's herd and sales.
//
// It is recomputed on every request from the current livestock and order
// records; nothing here is persisted.
//
// swagger:model Dashboard
type Dashboard struct {
	FarmerID             string
	TotalAnimals         int
	HealthSummary        HealthSummary
	UpcomingVaccinations []UpcomingVaccination
	ActiveOrders         int
	RecentOrders         []Order
	TotalRevenue         decimal.Decimal
	MostSoldProduct      *ProductSales // nil when the farmer has sold nothing
}

// HealthSummary counts animals by health classification. NeedsCheckup is
// computed independently and may overlap with Healthy or Sick.
type HealthSummary struct {
	Healthy      int
	Sick         int
	NeedsCheckup int
}

// UpcomingVaccination is a vaccination entry due soon, tagged with its animal.
type UpcomingVaccination struct {
	AnimalID    string
	AnimalName  string
	VaccineName string
	DueAt       time.Time
}

// ProductSales is the accumulated sales of one product across orders.
type ProductSales struct {
	ProductID     string
	Name          string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}
