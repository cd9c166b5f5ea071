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

// Package scheduler pkg/scheduler/decay.go
package scheduler

import (
	"sort"
	"time"

	"github.com/VedantChandore/crcms/pkg/models"
)

// DecayAnalysis is the output of the inspection-history trend analysis.
type DecayAnalysis struct {
	RatePerDay float64           `json:"rate_per_day"`
	Trend      models.DecayTrend `json:"trend"`
}

// AnalyzeDecay estimates how fast a road is losing condition score and
// whether that loss is speeding up. History arrives unsorted; records are
// ordered by date before any rate is computed.
func AnalyzeDecay(cfg DecayConfig, history []models.InspectionRecord) DecayAnalysis {
	if len(history) < 2 {
		return DecayAnalysis{RatePerDay: 0, Trend: models.TrendStable}
	}

	sorted := make([]models.InspectionRecord, len(history))
	copy(sorted, history)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rate := decayRate(sorted)

	// Trend needs a midpoint split, which needs at least 3 records. With
	// exactly 2 there is nothing to compare: always stable.
	trend := models.TrendStable

	if mid := len(sorted) / 2; len(sorted) >= 3 && mid > 0 {
		firstHalf := decayRate(sorted[:mid+1])
		secondHalf := decayRate(sorted[mid:])

		switch {
		case secondHalf > firstHalf*cfg.AcceleratingRatio:
			trend = models.TrendAccelerating
		case secondHalf < firstHalf*cfg.ImprovingRatio:
			trend = models.TrendImproving
		}
	}

	return DecayAnalysis{RatePerDay: rate, Trend: trend}
}

// decayRate returns the non-negative condition-score loss per day across a
// date-ascending slice of records.
func decayRate(sorted []models.InspectionRecord) float64 {
	first := sorted[0]
	last := sorted[len(sorted)-1]

	days := last.Date.Sub(first.Date).Hours() / 24
	if days <= 0 {
		return 0
	}

	rate := (first.ConditionScore - last.ConditionScore) / days
	if rate < 0 {
		return 0
	}

	return rate
}

// daysBetween is the signed whole-day distance from a to b.
func daysBetween(a, b time.Time) int {
	hours := b.Sub(a).Hours()

	if hours >= 0 {
		return int(hours/24 + 0.5)
	}

	return int(hours/24 - 0.5)
}
