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

// Package scoring computes the CIBIL-style health score for a road from
// its distress measurements. The scheduling engine never calls into this
// package directly; it consumes the score through an injected function.
package scoring

import (
	"math"

	"github.com/VedantChandore/crcms/pkg/models"
)

// Engineering ceilings for each distress metric. A measurement at or above
// its ceiling counts as fully distressed regardless of dataset skew.
const (
	maxIRI             = 10.0
	maxAlligatorPct    = 40.0
	maxPotholesPerKM   = 30.0
	maxRuttingMM       = 40.0
	maxLongitudinalPct = 60.0
	maxTransversePerKM = 25.0
	maxRavelingPct     = 45.0
	maxEdgeBreakingPct = 50.0
	maxPatchesPerKM    = 20.0
	maxPotholeDepthCM  = 15.0
)

// PDI weights. Must sum to 1.0.
const (
	weightIRI          = 0.22
	weightAlligator    = 0.18
	weightPotholes     = 0.14
	weightRutting      = 0.12
	weightLongitudinal = 0.08
	weightTransverse   = 0.07
	weightRaveling     = 0.07
	weightEdgeBreaking = 0.06
	weightPatches      = 0.04
	weightPotholeDepth = 0.02
)

// Band cutoffs on the 0-100 CIBIL scale.
const (
	bandAPlusMin = 90.0
	bandAMin     = 80.0
	bandBMin     = 70.0
	bandCMin     = 55.0
	bandDMin     = 40.0
)

// Condition category cutoffs used in exports and dashboards.
const (
	categoryGoodMin = 80.0
	categoryFairMin = 60.0
	categoryPoorMin = 40.0
)

// clipNorm normalises a distress value to [0,1] against its ceiling.
func clipNorm(value, ceiling float64) float64 {
	if value <= 0 {
		return 0
	}

	if value >= ceiling {
		return 1
	}

	return value / ceiling
}

// ComputePDI returns the Pavement Distress Index for a road on a 0-100
// scale where 100 means maximally damaged.
func ComputePDI(road models.RoadAsset) float64 {
	d := road.Distress

	sum := weightIRI*clipNorm(road.IRIValue, maxIRI) +
		weightAlligator*clipNorm(d.AlligatorCrackingPct, maxAlligatorPct) +
		weightPotholes*clipNorm(d.PotholesPerKM, maxPotholesPerKM) +
		weightRutting*clipNorm(d.RuttingDepthMM, maxRuttingMM) +
		weightLongitudinal*clipNorm(d.CracksLongitudinalPct, maxLongitudinalPct) +
		weightTransverse*clipNorm(d.CracksTransversePerKM, maxTransversePerKM) +
		weightRaveling*clipNorm(d.RavelingPct, maxRavelingPct) +
		weightEdgeBreaking*clipNorm(d.EdgeBreakingPct, maxEdgeBreakingPct) +
		weightPatches*clipNorm(d.PatchesPerKM, maxPatchesPerKM) +
		weightPotholeDepth*clipNorm(d.PotholeAvgDepthCM, maxPotholeDepthCM)

	return math.Min(100, math.Max(0, sum*100))
}

// ComputeHealthScore derives the full health score for a road. The CIBIL
// score is the inverse of the PDI: 100 means a perfect road.
func ComputeHealthScore(road models.RoadAsset) models.HealthScore {
	pdi := ComputePDI(road)
	score := math.Round((100-pdi)*100) / 100

	return models.HealthScore{
		Score:             score,
		Band:              BandFor(score),
		ConditionCategory: ConditionCategory(score),
		PDI:               math.Round(pdi*100) / 100,
	}
}

// BandFor maps a 0-100 score to its health band.
func BandFor(score float64) models.Band {
	switch {
	case score >= bandAPlusMin:
		return models.BandAPlus
	case score >= bandAMin:
		return models.BandA
	case score >= bandBMin:
		return models.BandB
	case score >= bandCMin:
		return models.BandC
	case score >= bandDMin:
		return models.BandD
	default:
		return models.BandE
	}
}

// ConditionCategory maps a score to the coarse dashboard category.
func ConditionCategory(score float64) string {
	switch {
	case score >= categoryGoodMin:
		return "Good"
	case score >= categoryFairMin:
		return "Fair"
	case score >= categoryPoorMin:
		return "Poor"
	default:
		return "Critical"
	}
}

// BaseInspectionInterval returns the re-inspection interval in days for a
// health band before any risk or seasonal adjustment.
func BaseInspectionInterval(band models.Band) int {
	switch band {
	case models.BandAPlus:
		return 365
	case models.BandA:
		return 300
	case models.BandB:
		return 240
	case models.BandC:
		return 180
	case models.BandD:
		return 90
	case models.BandE:
		return 30
	default:
		return 90
	}
}
