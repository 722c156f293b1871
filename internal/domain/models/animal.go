package models

import "time"

// HealthStatus is the veterinary classification stored on an animal record.
type HealthStatus string

const (
	HealthHealthy HealthStatus = "healthy"
	HealthSick    HealthStatus = "sick"
	HealthUnknown HealthStatus = "unknown"
)

// Animal represents a single livestock record owned by a farmer.
//
// Fields:
//   - ID: unique identifier of the animal.
//   - OwnerID: the farmer (seller account) that owns the animal.
//   - Name: display name shown on the dashboard.
//   - HealthStatus: stored classification; may be empty for records created
//     before the field existed (see Health).
//   - LastCheckup: time of the last veterinary checkup, nil if never checked.
//   - Vaccinations: vaccination history, including scheduled boosters.
type Animal struct {
	ID           string        `json:"id" example:"a-001"`
	OwnerID      string        `json:"ownerId" example:"farmer-42"`
	Name         string        `json:"name" example:"Gauri"`
	HealthStatus HealthStatus  `json:"healthStatus,omitempty" example:"healthy"`
	LastCheckup  *time.Time    `json:"lastCheckup,omitempty"`
	Vaccinations []Vaccination `json:"vaccinations"`
}

// Vaccination is one administered vaccine with an optional next-due date.
type Vaccination struct {
	Name           string     `json:"name" example:"FMD"`
	AdministeredAt time.Time  `json:"administeredAt"`
	NextDueAt      *time.Time `json:"nextDueAt,omitempty"`
}

// Health returns the effective health status of the animal.
//
// An empty stored status defaults to healthy when the animal has a recorded
// checkup and to unknown when it was never examined. Unrecognized values are
// reported as unknown.
func (a Animal) Health() HealthStatus {
	switch a.HealthStatus {
	case HealthHealthy, HealthSick, HealthUnknown:
		return a.HealthStatus
	case "":
		if a.LastCheckup != nil {
			return HealthHealthy
		}
		return HealthUnknown
	default:
		return HealthUnknown
	}
}
