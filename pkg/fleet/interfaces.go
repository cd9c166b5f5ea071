// Package fleet pkg/fleet/interfaces.go
package fleet

import "github.com/VedantChandore/crcms/pkg/models"

//go:generate mockgen -destination=mock_store.go -package=fleet github.com/VedantChandore/crcms/pkg/fleet Store

// HealthScorer computes the health score for a road asset. The fleet
// service never computes scores itself; the function is injected so the
// scoring model can evolve independently.
type HealthScorer func(models.RoadAsset) models.HealthScore

// Store persists the durable state: roads, the append-only inspection
// log, and booking state. Derived schedules are never stored.
type Store interface {
	UpsertRoad(road *models.RoadAsset) error
	ListRoads() ([]models.RoadAsset, error)
	InsertInspection(rec *models.InspectionRecord) error
	UpsertBooking(booking *models.Booking) error
	DeleteBooking(roadID string) error
	ListBookings() ([]models.Booking, error)
}
