// Package api pkg/api/types.go
package api

import (
	"time"

	"github.com/VedantChandore/crcms/pkg/models"
)

// BookingRequest is the payload for marking a road as scheduled.
type BookingRequest struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Agency   string `json:"agency"`
	WorkType string `json:"work_type"`
}

// InspectionRequest is the payload for recording a completed inspection.
type InspectionRequest struct {
	Agency           string                 `json:"agency"`
	Distress         models.DistressMetrics `json:"distress"`
	IRIValue         float64                `json:"iri_value"`
	SurfaceDamagePct float64                `json:"surface_damage_pct"`
	Waterlogging     bool                   `json:"waterlogging"`
	DrainageStatus   string                 `json:"drainage_status"`
	Remarks          string                 `json:"remarks"`
}

// MonsoonRequest toggles the global seasonal model.
type MonsoonRequest struct {
	Enabled bool `json:"enabled"`
}

// MonsoonResponse reports the current toggle state.
type MonsoonResponse struct {
	Enabled bool `json:"enabled"`
}

// ScheduleResponse wraps the sorted schedule with its generation metadata.
type ScheduleResponse struct {
	GeneratedAt time.Time                    `json:"generated_at"`
	MonsoonMode bool                         `json:"monsoon_mode"`
	Count       int                          `json:"count"`
	Items       []models.ScheduledInspection `json:"items"`
	Errors      []models.RoadError           `json:"errors,omitempty"`
}

// ErrorResponse is the JSON body for non-2xx replies.
type ErrorResponse struct {
	Error string `json:"error"`
}
