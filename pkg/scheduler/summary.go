// Package scheduler pkg/scheduler/summary.go
package scheduler

import "github.com/VedantChandore/crcms/pkg/models"

// Summarize reduces a schedule into the fleet-wide dashboard counters.
// An empty schedule yields a zeroed summary, not an error.
func Summarize(schedule []models.ScheduledInspection) models.ScheduleSummary {
	summary := models.ScheduleSummary{
		TotalRoads: len(schedule),
		ByPriority: make(map[models.PriorityClass]int),
		ByAction:   make(map[models.ActionType]int),
		ByQuarter:  make(map[string]int),
		ByAgency:   make(map[string]int),
	}

	var decayTotal float64

	for i := range schedule {
		item := &schedule[i]

		summary.ByPriority[item.Priority]++
		summary.ByAction[item.Action]++
		summary.ByQuarter[item.Quarter]++
		summary.ByAgency[item.Agency]++
		summary.TotalEstimatedCost += item.EstimatedCost
		decayTotal += item.DecayRatePerDay

		if item.IsOverdue {
			summary.OverdueCount++
		}
	}

	if len(schedule) > 0 {
		summary.AvgDecayRate = decayTotal / float64(len(schedule))
	}

	return summary
}
