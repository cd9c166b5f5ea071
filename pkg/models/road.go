/*-
 * Copyright 2026 Vedant Chandore.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package models pkg/models/road.go
package models

// Band is the ordinal health classification of a road, best (A+) to worst (E).
type Band string

const (
	BandAPlus Band = "A+"
	BandA     Band = "A"
	BandB     Band = "B"
	BandC     Band = "C"
	BandD     Band = "D"
	BandE     Band = "E"
)

// SurfaceType identifies the pavement construction of a road segment.
type SurfaceType string

const (
	SurfaceConcrete SurfaceType = "concrete"
	SurfaceBitumen  SurfaceType = "bitumen"
	SurfaceGravel   SurfaceType = "gravel"
	SurfaceEarthen  SurfaceType = "earthen"
)

// Jurisdiction values as they appear in the registry dataset.
const (
	JurisdictionNHAI         = "NHAI"
	JurisdictionMSRDC        = "MSRDC"
	JurisdictionStatePWD     = "State PWD"
	JurisdictionMunicipality = "Municipality"
	JurisdictionPMGSY        = "PMGSY"
)

// Rainfall categories used by the seasonal model.
const (
	RainfallLow    = "low"
	RainfallMedium = "medium"
	RainfallHigh   = "high"
)

// DistressMetrics holds the nine raw surface-defect measurements for a
// segment, in the units the field surveys report them.
type DistressMetrics struct {
	PotholesPerKM         float64 `json:"potholes_per_km"`
	PotholeAvgDepthCM     float64 `json:"pothole_avg_depth_cm"`
	CracksLongitudinalPct float64 `json:"cracks_longitudinal_pct"`
	CracksTransversePerKM float64 `json:"cracks_transverse_per_km"`
	AlligatorCrackingPct  float64 `json:"alligator_cracking_pct"`
	RuttingDepthMM        float64 `json:"rutting_depth_mm"`
	RavelingPct           float64 `json:"raveling_pct"`
	EdgeBreakingPct       float64 `json:"edge_breaking_pct"`
	PatchesPerKM          float64 `json:"patches_per_km"`
}

// RoadAsset is one monitored road segment. The engine treats it as an
// immutable value per scheduling pass; the recalculation service produces
// a new value rather than mutating a shared one.
type RoadAsset struct {
	RoadID           string             `json:"road_id"`
	Name             string             `json:"name"`
	District         string             `json:"district"`
	Taluka           string             `json:"taluka"`
	Jurisdiction     string             `json:"jurisdiction"`
	LengthKM         float64            `json:"length_km"`
	SurfaceType      SurfaceType        `json:"surface_type"`
	YearConstructed  int                `json:"year_constructed"`
	TerrainType      string             `json:"terrain_type"`
	SlopeCategory    string             `json:"slope_category"`
	RegionType       string             `json:"region_type"`
	RainfallCategory string             `json:"monsoon_rainfall_category"`
	FloodProne       bool               `json:"flood_prone"`
	LandslideProne   bool               `json:"landslide_prone"`
	GhatSection      bool               `json:"ghat_section_flag"`
	TourismRoute     bool               `json:"tourism_route_flag"`
	AvgDailyTraffic  float64            `json:"avg_daily_traffic"`
	TruckPercentage  float64            `json:"truck_percentage"`
	IRIValue         float64            `json:"iri_value"`
	Distress         DistressMetrics    `json:"distress"`
	ConditionScore   float64            `json:"condition_score"`
	Band             Band               `json:"band"`
	Inspections      []InspectionRecord `json:"inspections,omitempty"`
}

// Clone returns a deep copy of the asset, including its inspection history.
// Used by the recalculation service to guarantee copy-on-write semantics.
func (r RoadAsset) Clone() RoadAsset {
	clone := r

	if len(r.Inspections) > 0 {
		clone.Inspections = make([]InspectionRecord, len(r.Inspections))
		copy(clone.Inspections, r.Inspections)
	}

	return clone
}

// HealthScore is the output of the external scoring function for one road.
type HealthScore struct {
	Score             float64 `json:"score"`
	Band              Band    `json:"band"`
	ConditionCategory string  `json:"condition_category"`
	PDI               float64 `json:"pdi"`
}
