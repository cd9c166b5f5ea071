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

// Package scheduler pkg/scheduler/generator.go
package scheduler

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/VedantChandore/crcms/pkg/models"
)

// BaseIntervalFunc supplies the band base interval in days. The band table
// is a scoring-module concern; the engine only consumes it.
type BaseIntervalFunc func(models.Band) int

// Engine turns a fleet of road assets into a prioritized inspection
// schedule. All scoring is pure; the only inputs are the roads, the
// persisted bookings and an explicit "now".
type Engine struct {
	cfg          Config
	baseInterval BaseIntervalFunc
}

// NewEngine builds an engine from a constant table and a base-interval
// lookup.
func NewEngine(cfg Config, baseInterval BaseIntervalFunc) (*Engine, error) {
	if baseInterval == nil {
		return nil, ErrNilBaseInterval
	}

	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}

	return &Engine{cfg: cfg, baseInterval: baseInterval}, nil
}

// Config exposes the engine's constant tables, mainly for tests.
func (e *Engine) Config() Config {
	return e.cfg
}

// Generate runs the full pipeline for every road and returns the schedule
// sorted by priority score descending, ties broken by road id ascending so
// the output is reproducible. One bad road yields a RoadError and is
// skipped; it never aborts the batch.
func (e *Engine) Generate(
	roads []models.RoadAsset,
	bookings map[string]*models.Booking,
	monsoonMode bool,
	now time.Time,
) ([]models.ScheduledInspection, []models.RoadError) {
	if len(roads) == 0 {
		return []models.ScheduledInspection{}, nil
	}

	type outcome struct {
		item models.ScheduledInspection
		err  *models.RoadError
	}

	roadChan := make(chan models.RoadAsset)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup

	for i := 0; i < e.cfg.Concurrency; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for road := range roadChan {
				item, err := e.ScheduleRoad(road, bookings[road.RoadID], monsoonMode, now)
				if err != nil {
					outcomes <- outcome{err: err}
					continue
				}

				outcomes <- outcome{item: item}
			}
		}()
	}

	go func() {
		defer close(roadChan)

		for _, road := range roads {
			roadChan <- road
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	schedule := make([]models.ScheduledInspection, 0, len(roads))

	var errs []models.RoadError

	for out := range outcomes {
		if out.err != nil {
			errs = append(errs, *out.err)
			continue
		}

		schedule = append(schedule, out.item)
	}

	sortSchedule(schedule)

	return schedule, errs
}

// ScheduleRoad runs the pipeline for a single road.
func (e *Engine) ScheduleRoad(
	road models.RoadAsset,
	booking *models.Booking,
	monsoonMode bool,
	now time.Time,
) (models.ScheduledInspection, *models.RoadError) {
	if road.RoadID == "" {
		return models.ScheduledInspection{}, &models.RoadError{
			RoadID: road.RoadID,
			Err:    ErrMissingRoadID,
			Reason: ErrMissingRoadID.Error(),
		}
	}

	// Every record feeds the decay analysis, so a zero date anywhere in
	// the history fails the road, not just one on the latest record.
	for i := range road.Inspections {
		if road.Inspections[i].Date.IsZero() {
			return models.ScheduledInspection{}, &models.RoadError{
				RoadID: road.RoadID,
				Err:    ErrInvalidRecordDate,
				Reason: fmt.Sprintf("inspection %s has a zero date", road.Inspections[i].ID),
			}
		}
	}

	last := latestInspection(road.Inspections)

	riskFactors, riskMult := AnalyzeRisk(e.cfg.Risk, road, now)
	seasonalMult := SeasonalMultiplier(e.cfg.Seasonal, road, monsoonMode)
	decay := AnalyzeDecay(e.cfg.Decay, road.Inspections)
	severity := DistressSeverity(e.cfg.Distress, road.Distress)

	base := e.baseInterval(road.Band)
	adjusted := AdjustInterval(e.cfg, base, riskMult, seasonalMult, decay.RatePerDay)

	var lastDate *time.Time

	if last != nil {
		lastDate = &last.Date
	}

	due := ComputeDue(e.cfg, lastDate, adjusted, now)

	score := PriorityScore(e.cfg.Priority, PriorityInput{
		Band:             road.Band,
		OverdueDays:      due.OverdueDays,
		ConditionScore:   road.ConditionScore,
		RiskFactorCount:  len(riskFactors),
		AvgDailyTraffic:  road.AvgDailyTraffic,
		DecayRatePerDay:  decay.RatePerDay,
		DistressSeverity: severity,
	})

	action := ClassifyAction(e.cfg.Action, ActionInput{
		Band:             road.Band,
		IsOverdue:        due.IsOverdue,
		OverdueDays:      due.OverdueDays,
		ConditionScore:   road.ConditionScore,
		DistressSeverity: severity,
	})

	return models.ScheduledInspection{
		Road:                 road,
		LastInspection:       last,
		BaseIntervalDays:     base,
		AdjustedIntervalDays: adjusted,
		NextDue:              due.NextDue,
		DaysUntilDue:         due.DaysUntilDue,
		IsOverdue:            due.IsOverdue,
		OverdueDays:          due.OverdueDays,
		Priority:             ClassifyPriority(score),
		PriorityScore:        score,
		Action:               action,
		RiskFactors:          riskFactors,
		EstimatedCost:        EstimateCost(e.cfg, road, action),
		Agency:               AssignAgency(road.Jurisdiction, action),
		Quarter:              QuarterLabel(due.NextDue),
		DecayRatePerDay:      decay.RatePerDay,
		DecayTrend:           decay.Trend,
		DistressSeverity:     severity,
		Booking:              booking,
	}, nil
}

// EstimateCost prices the recommended action by length.
func EstimateCost(cfg Config, road models.RoadAsset, action models.ActionType) float64 {
	lengthKM := road.LengthKM
	if lengthKM <= 0 {
		lengthKM = 1
	}

	return cfg.CostPerKM[action] * lengthKM
}

// QuarterLabel renders a "Qn YYYY" bucket for a due date.
func QuarterLabel(t time.Time) string {
	quarter := (int(t.Month())-1)/3 + 1

	return fmt.Sprintf("Q%d %d", quarter, t.Year())
}

// latestInspection returns the most recent record by date, or nil.
func latestInspection(history []models.InspectionRecord) *models.InspectionRecord {
	if len(history) == 0 {
		return nil
	}

	latest := history[0]

	for _, rec := range history[1:] {
		if rec.Date.After(latest.Date) {
			latest = rec
		}
	}

	return &latest
}

// sortSchedule orders by priority score descending with road id as the
// deterministic tie-break. Sorting an already-sorted schedule is a no-op.
func sortSchedule(schedule []models.ScheduledInspection) {
	sort.SliceStable(schedule, func(i, j int) bool {
		if schedule[i].PriorityScore != schedule[j].PriorityScore {
			return schedule[i].PriorityScore > schedule[j].PriorityScore
		}

		return schedule[i].Road.RoadID < schedule[j].Road.RoadID
	})
}
