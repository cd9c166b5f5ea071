/*
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

package scheduler

import (
	"testing"
	"time"

	"github.com/VedantChandore/crcms/pkg/models"
	"github.com/VedantChandore/crcms/pkg/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	engine, err := NewEngine(DefaultConfig(), scoring.BaseInspectionInterval)
	require.NoError(t, err)

	return engine
}

func testRoad(id string, band models.Band, score float64) models.RoadAsset {
	return models.RoadAsset{
		RoadID:           id,
		Name:             "Test Road " + id,
		Jurisdiction:     models.JurisdictionStatePWD,
		LengthKM:         5,
		SurfaceType:      models.SurfaceBitumen,
		YearConstructed:  2022,
		RainfallCategory: models.RainfallMedium,
		ConditionScore:   score,
		Band:             band,
	}
}

func TestNewEngine(t *testing.T) {
	_, err := NewEngine(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrNilBaseInterval)
}

func TestGenerate(t *testing.T) {
	engine := newTestEngine(t)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("empty fleet yields empty schedule", func(t *testing.T) {
		schedule, errs := engine.Generate(nil, nil, false, now)

		assert.Empty(t, schedule)
		assert.Empty(t, errs)
	})

	t.Run("never inspected road is overdue by seven days", func(t *testing.T) {
		schedule, errs := engine.Generate(
			[]models.RoadAsset{testRoad("NH48-001", models.BandB, 75)},
			nil, false, now)

		require.Empty(t, errs)
		require.Len(t, schedule, 1)

		item := schedule[0]
		assert.True(t, item.IsOverdue)
		assert.Equal(t, 7, item.OverdueDays)
		assert.Equal(t, -7, item.DaysUntilDue)
		assert.Nil(t, item.LastInspection)
	})

	t.Run("sorted by priority descending", func(t *testing.T) {
		roads := []models.RoadAsset{
			testRoad("NH48-003", models.BandA, 85),
			testRoad("NH48-001", models.BandE, 15),
			testRoad("NH48-002", models.BandC, 60),
		}

		schedule, errs := engine.Generate(roads, nil, false, now)

		require.Empty(t, errs)
		require.Len(t, schedule, 3)

		for i := 1; i < len(schedule); i++ {
			assert.GreaterOrEqual(t,
				schedule[i-1].PriorityScore, schedule[i].PriorityScore)
		}

		assert.Equal(t, "NH48-001", schedule[0].Road.RoadID)
	})

	t.Run("tied priorities break on road id and re-sorting is idempotent", func(t *testing.T) {
		// Identical roads except id produce identical scores.
		roads := []models.RoadAsset{
			testRoad("NH48-009", models.BandC, 60),
			testRoad("NH48-001", models.BandC, 60),
			testRoad("NH48-005", models.BandC, 60),
		}

		first, errs := engine.Generate(roads, nil, false, now)
		require.Empty(t, errs)
		require.Len(t, first, 3)

		assert.Equal(t, first[0].PriorityScore, first[1].PriorityScore)
		assert.Equal(t, "NH48-001", first[0].Road.RoadID)
		assert.Equal(t, "NH48-005", first[1].Road.RoadID)
		assert.Equal(t, "NH48-009", first[2].Road.RoadID)

		second, _ := engine.Generate(roads, nil, false, now)
		for i := range first {
			assert.Equal(t, first[i].Road.RoadID, second[i].Road.RoadID)
		}
	})

	t.Run("band E long overdue road is emergency and critical", func(t *testing.T) {
		road := testRoad("NH48-911", models.BandE, 20)

		// Back-date the last inspection so the road is exactly 45 days over
		// its adjusted interval.
		_, riskMult := AnalyzeRisk(engine.Config().Risk, road, now)
		interval := AdjustInterval(engine.Config(),
			scoring.BaseInspectionInterval(models.BandE), riskMult, 1.0, 0)
		inspected := now.AddDate(0, 0, -(interval + 45))

		road.Inspections = []models.InspectionRecord{{
			ID:             "i1",
			RoadID:         road.RoadID,
			Date:           inspected,
			ConditionScore: 20,
		}}

		schedule, errs := engine.Generate([]models.RoadAsset{road}, nil, false, now)

		require.Empty(t, errs)
		require.Len(t, schedule, 1)

		item := schedule[0]
		require.True(t, item.IsOverdue)
		assert.Equal(t, 45, item.OverdueDays)
		assert.Equal(t, models.ActionEmergency, item.Action)
		assert.Equal(t, models.PriorityCritical, item.Priority)
	})

	t.Run("bad record fails only its own road", func(t *testing.T) {
		bad := testRoad("NH48-666", models.BandB, 70)
		bad.Inspections = []models.InspectionRecord{{ID: "broken", RoadID: bad.RoadID}}

		roads := []models.RoadAsset{bad, testRoad("NH48-001", models.BandB, 70)}

		schedule, errs := engine.Generate(roads, nil, false, now)

		require.Len(t, errs, 1)
		assert.Equal(t, "NH48-666", errs[0].RoadID)
		assert.ErrorIs(t, errs[0].Err, ErrInvalidRecordDate)

		require.Len(t, schedule, 1)
		assert.Equal(t, "NH48-001", schedule[0].Road.RoadID)
	})

	t.Run("zero date in older history fails the road", func(t *testing.T) {
		bad := testRoad("NH48-667", models.BandB, 70)
		bad.Inspections = []models.InspectionRecord{
			{ID: "broken", RoadID: bad.RoadID, ConditionScore: 80},
			{ID: "ok-1", RoadID: bad.RoadID, Date: now.AddDate(0, -6, 0), ConditionScore: 75},
			{ID: "ok-2", RoadID: bad.RoadID, Date: now.AddDate(0, -1, 0), ConditionScore: 70},
		}

		schedule, errs := engine.Generate([]models.RoadAsset{bad}, nil, false, now)

		require.Len(t, errs, 1)
		assert.Equal(t, "NH48-667", errs[0].RoadID)
		assert.ErrorIs(t, errs[0].Err, ErrInvalidRecordDate)
		assert.Contains(t, errs[0].Reason, "broken")
		assert.Empty(t, schedule)
	})

	t.Run("bookings are joined by road id", func(t *testing.T) {
		roads := []models.RoadAsset{
			testRoad("NH48-001", models.BandB, 70),
			testRoad("NH48-002", models.BandB, 70),
		}
		bookings := map[string]*models.Booking{
			"NH48-002": {RoadID: "NH48-002", Agency: models.JurisdictionStatePWD},
		}

		schedule, errs := engine.Generate(roads, bookings, false, now)
		require.Empty(t, errs)

		for _, item := range schedule {
			if item.Road.RoadID == "NH48-002" {
				require.NotNil(t, item.Booking)
			} else {
				assert.Nil(t, item.Booking)
			}
		}
	})

	t.Run("monsoon mode never lengthens an interval", func(t *testing.T) {
		road := testRoad("NH48-001", models.BandB, 70)
		road.RainfallCategory = models.RainfallHigh
		road.FloodProne = true

		dry, errs := engine.Generate([]models.RoadAsset{road}, nil, false, now)
		require.Empty(t, errs)

		wet, errs := engine.Generate([]models.RoadAsset{road}, nil, true, now)
		require.Empty(t, errs)

		assert.Less(t, wet[0].AdjustedIntervalDays, dry[0].AdjustedIntervalDays)
	})

	t.Run("interval floor holds fleet-wide", func(t *testing.T) {
		roads := []models.RoadAsset{
			testRoad("NH48-001", models.BandE, 5),
			testRoad("NH48-002", models.BandD, 30),
		}

		for i := range roads {
			roads[i].FloodProne = true
			roads[i].LandslideProne = true
			roads[i].GhatSection = true
			roads[i].RainfallCategory = models.RainfallHigh
			roads[i].SurfaceType = models.SurfaceEarthen
			roads[i].YearConstructed = 1980
		}

		schedule, errs := engine.Generate(roads, nil, true, now)
		require.Empty(t, errs)

		for _, item := range schedule {
			assert.GreaterOrEqual(t, item.AdjustedIntervalDays, engine.Config().MinIntervalDays)
		}
	})
}

func TestSummarize(t *testing.T) {
	engine := newTestEngine(t)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("empty schedule is a zeroed summary", func(t *testing.T) {
		summary := Summarize(nil)

		assert.Zero(t, summary.TotalRoads)
		assert.Zero(t, summary.TotalEstimatedCost)
		assert.Zero(t, summary.AvgDecayRate)
		assert.Empty(t, summary.ByPriority)
	})

	t.Run("counts add up", func(t *testing.T) {
		roads := []models.RoadAsset{
			testRoad("NH48-001", models.BandE, 15),
			testRoad("NH48-002", models.BandC, 60),
			testRoad("NH48-003", models.BandA, 85),
		}

		schedule, errs := engine.Generate(roads, nil, false, now)
		require.Empty(t, errs)

		summary := Summarize(schedule)

		assert.Equal(t, 3, summary.TotalRoads)
		assert.Equal(t, 3, summary.OverdueCount) // all never inspected

		var priorityTotal int
		for _, n := range summary.ByPriority {
			priorityTotal += n
		}
		assert.Equal(t, 3, priorityTotal)

		var cost float64
		for _, item := range schedule {
			cost += item.EstimatedCost
		}
		assert.Equal(t, cost, summary.TotalEstimatedCost)
	})
}
