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

// Package models pkg/models/schedule.go
package models

import (
	"fmt"
	"time"
)

// PriorityClass buckets the numeric priority score into SLA tiers.
type PriorityClass string

const (
	PriorityCritical PriorityClass = "critical"
	PriorityHigh     PriorityClass = "high"
	PriorityMedium   PriorityClass = "medium"
	PriorityLow      PriorityClass = "low"
)

// ActionType is the discrete maintenance recommendation for a road.
type ActionType string

const (
	ActionEmergency  ActionType = "emergency_repair"
	ActionUrgent     ActionType = "urgent_inspection"
	ActionRoutine    ActionType = "routine_repair"
	ActionPreventive ActionType = "preventive_maintenance"
	ActionMonitoring ActionType = "monitoring"
)

// DecayTrend classifies how a road's decay rate is evolving.
type DecayTrend string

const (
	TrendAccelerating DecayTrend = "accelerating"
	TrendStable       DecayTrend = "stable"
	TrendImproving    DecayTrend = "improving"
)

// Booking is the human-initiated scheduling state for a road. It is
// persisted separately from the derived schedule and survives across
// scheduling passes, joined back in by road id.
type Booking struct {
	RoadID        string    `json:"road_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Agency        string    `json:"agency"`
	WorkType      string    `json:"work_type"`
	CreatedAt     time.Time `json:"created_at"`
}

// ScheduledInspection is the engine output for one road at one point in
// scheduling time. It is recomputed fresh on every pass and discarded
// (never patched) when the underlying road changes.
type ScheduledInspection struct {
	Road                 RoadAsset         `json:"road"`
	LastInspection       *InspectionRecord `json:"last_inspection,omitempty"`
	BaseIntervalDays     int               `json:"base_interval_days"`
	AdjustedIntervalDays int               `json:"adjusted_interval_days"`
	NextDue              time.Time         `json:"next_due"`
	DaysUntilDue         int               `json:"days_until_due"`
	IsOverdue            bool              `json:"is_overdue"`
	OverdueDays          int               `json:"overdue_days"`
	Priority             PriorityClass     `json:"priority"`
	PriorityScore        float64           `json:"priority_score"`
	Action               ActionType        `json:"action"`
	RiskFactors          []string          `json:"risk_factors"`
	EstimatedCost        float64           `json:"estimated_cost"`
	Agency               string            `json:"agency"`
	Quarter              string            `json:"quarter"`
	DecayRatePerDay      float64           `json:"decay_rate_per_day"`
	DecayTrend           DecayTrend        `json:"decay_trend"`
	DistressSeverity     float64           `json:"distress_severity"`
	Booking              *Booking          `json:"booking,omitempty"`
}

// ScheduleSummary is the fleet-wide reduction over a sorted schedule.
type ScheduleSummary struct {
	TotalRoads         int                   `json:"total_roads"`
	OverdueCount       int                   `json:"overdue_count"`
	ByPriority         map[PriorityClass]int `json:"by_priority"`
	ByAction           map[ActionType]int    `json:"by_action"`
	ByQuarter          map[string]int        `json:"by_quarter"`
	ByAgency           map[string]int        `json:"by_agency"`
	TotalEstimatedCost float64               `json:"total_estimated_cost"`
	AvgDecayRate       float64               `json:"avg_decay_rate"`
}

// RoadError attributes a scheduling failure to a single road so callers
// can exclude or fix that record without aborting the batch.
type RoadError struct {
	RoadID string `json:"road_id"`
	Err    error  `json:"-"`
	Reason string `json:"reason"`
}

func (e *RoadError) Error() string {
	return fmt.Sprintf("road %s: %v", e.RoadID, e.Err)
}

func (e *RoadError) Unwrap() error {
	return e.Err
}
