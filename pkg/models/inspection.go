// Package models pkg/models/inspection.go
package models

import "time"

// InspectionRecord is one field survey result for a road. Records are
// immutable once created; a road's history is append-only and must be
// sorted by date before any trend analysis.
type InspectionRecord struct {
	ID               string    `json:"id"`
	RoadID           string    `json:"road_id"`
	Date             time.Time `json:"date"`
	Agency           string    `json:"agency"`
	ConditionScore   float64   `json:"condition_score"`
	SurfaceDamagePct float64   `json:"surface_damage_pct"`
	Waterlogging     bool      `json:"waterlogging"`
	DrainageStatus   string    `json:"drainage_status"`
	Remarks          string    `json:"remarks,omitempty"`
}

// InspectionForm carries the field-measured values submitted when a new
// inspection is recorded. Distress values overwrite the road's current
// measurements; the rest feed the new InspectionRecord.
type InspectionForm struct {
	Agency           string          `json:"agency"`
	Distress         DistressMetrics `json:"distress"`
	IRIValue         float64         `json:"iri_value"`
	SurfaceDamagePct float64         `json:"surface_damage_pct"`
	Waterlogging     bool            `json:"waterlogging"`
	DrainageStatus   string          `json:"drainage_status"`
	Remarks          string          `json:"remarks"`
}
