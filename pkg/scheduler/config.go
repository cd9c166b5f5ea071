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

// Package scheduler pkg/scheduler/config.go
package scheduler

import "github.com/VedantChandore/crcms/pkg/models"

// Priority class thresholds. These define the SLA tiers and are referenced
// by dashboards and tests; changing one is a contract change.
const (
	PriorityCriticalThreshold = 60.0
	PriorityHighThreshold     = 40.0
	PriorityMediumThreshold   = 20.0
)

// RiskConfig holds the per-condition interval-shrink factors applied by the
// risk analyzer. Every factor is in (0,1]; the running product is floored
// at Floor.
type RiskConfig struct {
	Floor float64 `json:"floor"`

	FloodProneFactor   float64 `json:"flood_prone_factor"`
	LandslideFactor    float64 `json:"landslide_factor"`
	GhatSectionFactor  float64 `json:"ghat_section_factor"`
	HighRainfallFactor float64 `json:"high_rainfall_factor"`
	HeavyTrafficFactor float64 `json:"heavy_traffic_factor"`
	TruckShareFactor   float64 `json:"truck_share_factor"`
	SteepTerrainFactor float64 `json:"steep_terrain_factor"`
	UnpavedFactor      float64 `json:"unpaved_factor"`
	EndOfLifeFactor    float64 `json:"end_of_life_factor"`
	TourismFactor      float64 `json:"tourism_factor"`
	DistressFactor     float64 `json:"distress_factor"`
	PoorScoreFactor    float64 `json:"poor_score_factor"`
	CriticalScoreFactor float64 `json:"critical_score_factor"`

	HeavyTrafficADT    float64 `json:"heavy_traffic_adt"`
	TruckSharePct      float64 `json:"truck_share_pct"`
	PotholeThreshold   float64 `json:"pothole_threshold"`
	AlligatorThreshold float64 `json:"alligator_threshold"`
	RuttingThreshold   float64 `json:"rutting_threshold"`
	PoorScore          float64 `json:"poor_score"`
	CriticalScore      float64 `json:"critical_score"`

	// DesignLifeYears by surface type; a road within EndOfLifeFraction of
	// its design life counts as near end of life.
	DesignLifeYears   map[models.SurfaceType]int `json:"design_life_years"`
	EndOfLifeFraction float64                    `json:"end_of_life_fraction"`
}

// SeasonalConfig holds the monsoon-mode multipliers. All penalties apply
// independently; the product is floored at Floor.
type SeasonalConfig struct {
	Floor              float64 `json:"floor"`
	HighRainfallFactor float64 `json:"high_rainfall_factor"`
	FloodProneFactor   float64 `json:"flood_prone_factor"`
	LandslideFactor    float64 `json:"landslide_factor"`
	GhatSectionFactor  float64 `json:"ghat_section_factor"`
	CoastalFactor      float64 `json:"coastal_factor"`
}

// DecayConfig holds the trend cutoffs and the interval multipliers applied
// for fast-decaying roads.
type DecayConfig struct {
	AcceleratingRatio float64 `json:"accelerating_ratio"`
	ImprovingRatio    float64 `json:"improving_ratio"`

	FastRatePerDay     float64 `json:"fast_rate_per_day"`
	ModerateRatePerDay float64 `json:"moderate_rate_per_day"`
	FastMultiplier     float64 `json:"fast_multiplier"`
	ModerateMultiplier float64 `json:"moderate_multiplier"`
}

// DistressConfig holds the normalisation ceilings and importance weights
// for the composite distress severity. Weights sum to 100.
type DistressConfig struct {
	// CapRatios caps each normalised term at 1.0 before weighting so a
	// single pathological measurement cannot push the severity above its
	// importance weight. The uncapped variant exists for parity with the
	// live-preview scorer; the capped form is canonical.
	CapRatios bool `json:"cap_ratios"`

	PotholeCeiling      float64 `json:"pothole_ceiling"`
	PotholeDepthCeiling float64 `json:"pothole_depth_ceiling"`
	LongitudinalCeiling float64 `json:"longitudinal_ceiling"`
	TransverseCeiling   float64 `json:"transverse_ceiling"`
	AlligatorCeiling    float64 `json:"alligator_ceiling"`
	RuttingCeiling      float64 `json:"rutting_ceiling"`
	RavelingCeiling     float64 `json:"raveling_ceiling"`
	EdgeBreakingCeiling float64 `json:"edge_breaking_ceiling"`
	PatchesCeiling      float64 `json:"patches_ceiling"`

	PotholeWeight      float64 `json:"pothole_weight"`
	PotholeDepthWeight float64 `json:"pothole_depth_weight"`
	LongitudinalWeight float64 `json:"longitudinal_weight"`
	TransverseWeight   float64 `json:"transverse_weight"`
	AlligatorWeight    float64 `json:"alligator_weight"`
	RuttingWeight      float64 `json:"rutting_weight"`
	RavelingWeight     float64 `json:"raveling_weight"`
	EdgeBreakingWeight float64 `json:"edge_breaking_weight"`
	PatchesWeight      float64 `json:"patches_weight"`
}

// PriorityConfig holds the additive scoring weights and caps. The sum is
// clamped to [0,100] after all contributions.
type PriorityConfig struct {
	BandWeights map[models.Band]float64 `json:"band_weights"`

	OverdueCap       float64 `json:"overdue_cap"`
	OverduePerDay    float64 `json:"overdue_per_day"`
	ConditionCap     float64 `json:"condition_cap"`
	ConditionPivot   float64 `json:"condition_pivot"`
	ConditionPerUnit float64 `json:"condition_per_unit"`
	RiskFactorCap    float64 `json:"risk_factor_cap"`
	RiskPerFactor    float64 `json:"risk_per_factor"`
	TrafficCap       float64 `json:"traffic_cap"`
	TrafficScaleADT  float64 `json:"traffic_scale_adt"`
	DecayCap         float64 `json:"decay_cap"`
	DecayScale       float64 `json:"decay_scale"`
	DistressCap      float64 `json:"distress_cap"`
	DistressScale    float64 `json:"distress_scale"`
}

// ActionConfig holds the cutoffs for the action classifier.
type ActionConfig struct {
	EmergencyOverdueDays int     `json:"emergency_overdue_days"`
	EmergencyScore       float64 `json:"emergency_score"`
	UrgentOverdueDays    int     `json:"urgent_overdue_days"`
	UrgentDistress       float64 `json:"urgent_distress"`
	RoutineDistress      float64 `json:"routine_distress"`
}

// Config is the full, named constant table for one scheduling engine.
// Two near-identical scheduler variants existed historically with drifted
// literals; every tunable now lives here so a single engine serves both.
type Config struct {
	Risk     RiskConfig     `json:"risk"`
	Seasonal SeasonalConfig `json:"seasonal"`
	Decay    DecayConfig    `json:"decay"`
	Distress DistressConfig `json:"distress"`
	Priority PriorityConfig `json:"priority"`
	Action   ActionConfig   `json:"action"`

	// MinIntervalDays floors the adjusted interval regardless of how
	// extreme the combined multipliers get.
	MinIntervalDays int `json:"min_interval_days"`

	// NeverInspectedGraceDays backdates the due date of a road with no
	// inspection history so it is overdue by construction.
	NeverInspectedGraceDays int `json:"never_inspected_grace_days"`

	// CostPerKM by recommended action, in INR.
	CostPerKM map[models.ActionType]float64 `json:"cost_per_km"`

	// Concurrency bounds the per-road worker pool in the generator.
	Concurrency int `json:"concurrency"`
}

// DefaultConfig returns the canonical constant tables.
func DefaultConfig() Config {
	return Config{
		Risk: RiskConfig{
			Floor:               0.20,
			FloodProneFactor:    0.75,
			LandslideFactor:     0.70,
			GhatSectionFactor:   0.80,
			HighRainfallFactor:  0.80,
			HeavyTrafficFactor:  0.85,
			TruckShareFactor:    0.85,
			SteepTerrainFactor:  0.85,
			UnpavedFactor:       0.75,
			EndOfLifeFactor:     0.70,
			TourismFactor:       0.90,
			DistressFactor:      0.80,
			PoorScoreFactor:     0.85,
			CriticalScoreFactor: 0.70,
			HeavyTrafficADT:     30000,
			TruckSharePct:       30,
			PotholeThreshold:    10,
			AlligatorThreshold:  15,
			RuttingThreshold:    20,
			PoorScore:           45,
			CriticalScore:       30,
			DesignLifeYears: map[models.SurfaceType]int{
				models.SurfaceConcrete: 30,
				models.SurfaceBitumen:  20,
				models.SurfaceGravel:   12,
				models.SurfaceEarthen:  8,
			},
			EndOfLifeFraction: 0.8,
		},
		Seasonal: SeasonalConfig{
			Floor:              0.30,
			HighRainfallFactor: 0.70,
			FloodProneFactor:   0.75,
			LandslideFactor:    0.80,
			GhatSectionFactor:  0.85,
			CoastalFactor:      0.90,
		},
		Decay: DecayConfig{
			AcceleratingRatio:  1.3,
			ImprovingRatio:     0.7,
			FastRatePerDay:     0.08,
			ModerateRatePerDay: 0.04,
			FastMultiplier:     0.70,
			ModerateMultiplier: 0.85,
		},
		Distress: DistressConfig{
			CapRatios:           true,
			PotholeCeiling:      30,
			PotholeDepthCeiling: 15,
			LongitudinalCeiling: 60,
			TransverseCeiling:   25,
			AlligatorCeiling:    50,
			RuttingCeiling:      40,
			RavelingCeiling:     45,
			EdgeBreakingCeiling: 50,
			PatchesCeiling:      20,
			PotholeWeight:       20,
			AlligatorWeight:     18,
			RuttingWeight:       15,
			LongitudinalWeight:  12,
			TransverseWeight:    10,
			PotholeDepthWeight:  8,
			RavelingWeight:      7,
			EdgeBreakingWeight:  5,
			PatchesWeight:       5,
		},
		Priority: PriorityConfig{
			BandWeights: map[models.Band]float64{
				models.BandE:     30,
				models.BandD:     24,
				models.BandC:     16,
				models.BandB:     8,
				models.BandA:     3,
				models.BandAPlus: 0,
			},
			OverdueCap:       25,
			OverduePerDay:    0.5,
			ConditionCap:     15,
			ConditionPivot:   50,
			ConditionPerUnit: 0.5,
			RiskFactorCap:    10,
			RiskPerFactor:    2,
			TrafficCap:       8,
			TrafficScaleADT:  50000,
			DecayCap:         10,
			DecayScale:       200,
			DistressCap:      12,
			DistressScale:    0.15,
		},
		Action: ActionConfig{
			EmergencyOverdueDays: 30,
			EmergencyScore:       25,
			UrgentOverdueDays:    15,
			UrgentDistress:       70,
			RoutineDistress:      50,
		},
		MinIntervalDays:         3,
		NeverInspectedGraceDays: 7,
		CostPerKM: map[models.ActionType]float64{
			models.ActionEmergency:  2_500_000,
			models.ActionUrgent:     1_200_000,
			models.ActionRoutine:    600_000,
			models.ActionPreventive: 250_000,
			models.ActionMonitoring: 50_000,
		},
		Concurrency: 8,
	}
}
