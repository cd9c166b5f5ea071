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

// Package scheduler pkg/scheduler/priority.go
package scheduler

import (
	"math"

	"github.com/VedantChandore/crcms/pkg/models"
)

// PriorityInput carries everything the priority scorer looks at for one road.
type PriorityInput struct {
	Band             models.Band
	OverdueDays      int
	ConditionScore   float64
	RiskFactorCount  int
	AvgDailyTraffic  float64
	DecayRatePerDay  float64
	DistressSeverity float64
}

// PriorityScore computes the bounded 0-100 urgency score: each input
// contributes additively up to its cap, the sum is clamped and rounded to
// one decimal.
func PriorityScore(cfg PriorityConfig, in PriorityInput) float64 {
	score := cfg.BandWeights[in.Band]

	score += capAt(float64(in.OverdueDays)*cfg.OverduePerDay, cfg.OverdueCap)

	if deficit := cfg.ConditionPivot - in.ConditionScore; deficit > 0 {
		score += capAt(deficit*cfg.ConditionPerUnit, cfg.ConditionCap)
	}

	score += capAt(float64(in.RiskFactorCount)*cfg.RiskPerFactor, cfg.RiskFactorCap)
	score += capAt(in.AvgDailyTraffic/cfg.TrafficScaleADT*cfg.TrafficCap, cfg.TrafficCap)
	score += capAt(in.DecayRatePerDay*cfg.DecayScale, cfg.DecayCap)
	score += capAt(in.DistressSeverity*cfg.DistressScale, cfg.DistressCap)

	if score > 100 {
		score = 100
	}

	if score < 0 {
		score = 0
	}

	return math.Round(score*10) / 10
}

// ClassifyPriority maps a score onto its SLA tier using the documented
// thresholds.
func ClassifyPriority(score float64) models.PriorityClass {
	switch {
	case score >= PriorityCriticalThreshold:
		return models.PriorityCritical
	case score >= PriorityHighThreshold:
		return models.PriorityHigh
	case score >= PriorityMediumThreshold:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

func capAt(value, cap float64) float64 {
	if value > cap {
		return cap
	}

	if value < 0 {
		return 0
	}

	return value
}
