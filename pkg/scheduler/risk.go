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

// Package scheduler pkg/scheduler/risk.go
package scheduler

import (
	"fmt"
	"time"

	"github.com/VedantChandore/crcms/pkg/models"
)

// AnalyzeRisk derives the qualitative risk tags and the interval-shrink
// multiplier for a road. Multiplication is commutative so check order does
// not change the product, but it does fix the tag order shown to users;
// the order below is the documented one and must stay stable.
func AnalyzeRisk(cfg RiskConfig, road models.RoadAsset, now time.Time) ([]string, float64) {
	var factors []string

	multiplier := 1.0

	apply := func(tag string, factor float64) {
		factors = append(factors, tag)
		multiplier *= factor
	}

	if road.FloodProne {
		apply("Flood-prone zone", cfg.FloodProneFactor)
	}

	if road.LandslideProne {
		apply("Landslide-prone zone", cfg.LandslideFactor)
	}

	if road.GhatSection {
		apply("Ghat section", cfg.GhatSectionFactor)
	}

	if road.RainfallCategory == models.RainfallHigh {
		apply("High monsoon rainfall", cfg.HighRainfallFactor)
	}

	if road.AvgDailyTraffic > cfg.HeavyTrafficADT {
		apply(fmt.Sprintf("Heavy traffic (%.0f ADT)", road.AvgDailyTraffic), cfg.HeavyTrafficFactor)
	}

	if road.TruckPercentage > cfg.TruckSharePct {
		apply(fmt.Sprintf("High truck share (%.0f%%)", road.TruckPercentage), cfg.TruckShareFactor)
	}

	if road.TerrainType == "steep" || road.SlopeCategory == "steep" {
		apply("Steep terrain", cfg.SteepTerrainFactor)
	}

	if road.SurfaceType == models.SurfaceGravel || road.SurfaceType == models.SurfaceEarthen {
		apply(fmt.Sprintf("Unpaved surface (%s)", road.SurfaceType), cfg.UnpavedFactor)
	}

	if nearEndOfLife(cfg, road, now) {
		apply("Near end of design life", cfg.EndOfLifeFactor)
	}

	if road.TourismRoute {
		apply("Tourism route", cfg.TourismFactor)
	}

	if road.Distress.PotholesPerKM > cfg.PotholeThreshold {
		apply(fmt.Sprintf("Severe potholing (%.1f/km)", road.Distress.PotholesPerKM), cfg.DistressFactor)
	}

	if road.Distress.AlligatorCrackingPct > cfg.AlligatorThreshold {
		apply(fmt.Sprintf("Alligator cracking (%.1f%%)", road.Distress.AlligatorCrackingPct), cfg.DistressFactor)
	}

	if road.Distress.RuttingDepthMM > cfg.RuttingThreshold {
		apply(fmt.Sprintf("Deep rutting (%.1fmm)", road.Distress.RuttingDepthMM), cfg.DistressFactor)
	}

	// Absolute condition thresholds; the critical one stacks on the poor one.
	if road.ConditionScore < cfg.PoorScore {
		apply(fmt.Sprintf("Low condition score (%.0f)", road.ConditionScore), cfg.PoorScoreFactor)
	}

	if road.ConditionScore < cfg.CriticalScore {
		apply("Critically low condition score", cfg.CriticalScoreFactor)
	}

	if multiplier < cfg.Floor {
		multiplier = cfg.Floor
	}

	return factors, multiplier
}

// nearEndOfLife reports whether a road has consumed EndOfLifeFraction of
// the design life for its surface type.
func nearEndOfLife(cfg RiskConfig, road models.RoadAsset, now time.Time) bool {
	if road.YearConstructed <= 0 {
		return false
	}

	lifespan, ok := cfg.DesignLifeYears[road.SurfaceType]
	if !ok {
		return false
	}

	age := now.Year() - road.YearConstructed

	return float64(age) >= cfg.EndOfLifeFraction*float64(lifespan)
}
