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

// Package scheduler pkg/scheduler/interval.go
package scheduler

import (
	"math"
	"time"
)

// DueStatus is the computed due state for one road.
type DueStatus struct {
	NextDue      time.Time `json:"next_due"`
	DaysUntilDue int       `json:"days_until_due"`
	IsOverdue    bool      `json:"is_overdue"`
	OverdueDays  int       `json:"overdue_days"`
}

// AdjustInterval layers the risk, seasonal and decay multipliers onto the
// band base interval, floored at MinIntervalDays.
func AdjustInterval(cfg Config, baseDays int, riskMult, seasonalMult, decayRate float64) int {
	adjusted := float64(baseDays) * riskMult * seasonalMult

	switch {
	case decayRate > cfg.Decay.FastRatePerDay:
		adjusted *= cfg.Decay.FastMultiplier
	case decayRate > cfg.Decay.ModerateRatePerDay:
		adjusted *= cfg.Decay.ModerateMultiplier
	}

	days := int(math.Round(adjusted))
	if days < cfg.MinIntervalDays {
		days = cfg.MinIntervalDays
	}

	return days
}

// ComputeDue derives the next-due date and overdue state. A road that has
// never been inspected is due NeverInspectedGraceDays in the past, so it
// is overdue by construction and surfaces at the top of urgency views.
func ComputeDue(cfg Config, lastInspection *time.Time, intervalDays int, now time.Time) DueStatus {
	var nextDue time.Time

	if lastInspection == nil {
		nextDue = now.AddDate(0, 0, -cfg.NeverInspectedGraceDays)
	} else {
		nextDue = lastInspection.AddDate(0, 0, intervalDays)
	}

	daysUntil := daysBetween(now, nextDue)

	status := DueStatus{
		NextDue:      nextDue,
		DaysUntilDue: daysUntil,
	}

	if daysUntil < 0 {
		status.IsOverdue = true
		status.OverdueDays = -daysUntil
	}

	return status
}
