// Package api pkg/api/export.go
package api

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/VedantChandore/crcms/pkg/models"
	"github.com/VedantChandore/crcms/pkg/scoring"
)

// exportColumns is the fixed column set agencies import into their own
// tooling. Order is part of the contract; append, never reorder.
var exportColumns = []string{
	"road_id",
	"road_name",
	"district",
	"cibil_score",
	"condition_category",
	"priority",
	"due_date",
	"overdue",
	"recommended_action",
	"assigned_agency",
	"decay_rate_per_day",
	"trend_alert",
	"risk_factors",
	"estimated_cost",
}

func (s *APIServer) exportCSV(w http.ResponseWriter, _ *http.Request) {
	items := s.fleet.Schedule()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=inspection_schedule_%s.csv", s.now().Format("20060102")))

	cw := csv.NewWriter(w)

	if err := cw.Write(exportColumns); err != nil {
		log.Printf("api: csv header write failed: %v", err)
		return
	}

	for _, item := range items {
		overdue := "no"
		if item.IsOverdue {
			overdue = fmt.Sprintf("yes (%dd)", item.OverdueDays)
		}

		trendAlert := "no"
		if item.DecayTrend == models.TrendAccelerating {
			trendAlert = "yes"
		}

		row := []string{
			item.Road.RoadID,
			item.Road.Name,
			item.Road.District,
			strconv.FormatFloat(item.Road.ConditionScore, 'f', 1, 64),
			scoring.ConditionCategory(item.Road.ConditionScore),
			string(item.Priority),
			item.NextDue.Format("2006-01-02"),
			overdue,
			string(item.Action),
			item.Agency,
			strconv.FormatFloat(item.DecayRatePerDay, 'f', 4, 64),
			trendAlert,
			strings.Join(item.RiskFactors, "; "),
			strconv.FormatFloat(item.EstimatedCost, 'f', 0, 64),
		}

		if err := cw.Write(row); err != nil {
			log.Printf("api: csv row write failed for %s: %v", item.Road.RoadID, err)
			return
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		log.Printf("api: csv flush failed: %v", err)
	}
}
