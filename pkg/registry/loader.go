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

// Package registry loads the road fleet and inspection history from the
// survey CSV dumps and joins them by road id.
package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/VedantChandore/crcms/pkg/models"
)

var (
	ErrMissingHeader = errors.New("csv is missing a header row")
	ErrMissingRoadID = errors.New("row has no road_id")
)

// dateLayouts accepted for inspection dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

var trailingDigits = regexp.MustCompile(`(\d+)\s*$`)

// row gives header-keyed access to one CSV record with the defaulting
// rules from the data dictionary: absent numerics are 0, absent rainfall
// is "medium".
type row struct {
	index  map[string]int
	fields []string
}

func (r row) str(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}

	return strings.TrimSpace(r.fields[i])
}

func (r row) float(col string) float64 {
	v, err := strconv.ParseFloat(r.str(col), 64)
	if err != nil {
		return 0
	}

	return v
}

func (r row) integer(col string) int {
	return int(r.float(col))
}

func (r row) boolean(col string) bool {
	switch strings.ToLower(r.str(col)) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}

// LoadRoads reads the fleet registry CSV at path.
func LoadRoads(path string) ([]models.RoadAsset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roads csv: %w", err)
	}
	defer f.Close()

	return ReadRoads(f)
}

// ReadRoads parses road assets from a header-keyed CSV stream. Rows
// without a road_id are skipped with a log line; they cannot be joined to
// anything downstream.
func ReadRoads(r io.Reader) ([]models.RoadAsset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingHeader, err)
	}

	index := headerIndex(header)

	var roads []models.RoadAsset

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read roads csv: %w", err)
		}

		rw := row{index: index, fields: fields}

		roadID := rw.str("road_id")
		if roadID == "" {
			log.Printf("registry: skipping road row without road_id")
			continue
		}

		rainfall := rw.str("monsoon_rainfall_category")
		if rainfall == "" {
			rainfall = models.RainfallMedium
		}

		roads = append(roads, models.RoadAsset{
			RoadID:           roadID,
			Name:             rw.str("name"),
			District:         rw.str("district"),
			Taluka:           rw.str("taluka"),
			Jurisdiction:     rw.str("jurisdiction"),
			LengthKM:         rw.float("length_km"),
			SurfaceType:      models.SurfaceType(rw.str("surface_type")),
			YearConstructed:  rw.integer("year_constructed"),
			TerrainType:      rw.str("terrain_type"),
			SlopeCategory:    rw.str("slope_category"),
			RegionType:       rw.str("region_type"),
			RainfallCategory: rainfall,
			FloodProne:       rw.boolean("flood_prone"),
			LandslideProne:   rw.boolean("landslide_prone"),
			GhatSection:      rw.boolean("ghat_section_flag"),
			TourismRoute:     rw.boolean("tourism_route_flag"),
			AvgDailyTraffic:  rw.float("avg_daily_traffic"),
			TruckPercentage:  rw.float("truck_percentage"),
			IRIValue:         rw.float("iri_value"),
			Distress: models.DistressMetrics{
				PotholesPerKM:         rw.float("potholes_per_km"),
				PotholeAvgDepthCM:     rw.float("pothole_avg_depth_cm"),
				CracksLongitudinalPct: rw.float("cracks_longitudinal_pct"),
				CracksTransversePerKM: rw.float("cracks_transverse_per_km"),
				AlligatorCrackingPct:  rw.float("alligator_cracking_pct"),
				RuttingDepthMM:        rw.float("rutting_depth_mm"),
				RavelingPct:           rw.float("raveling_pct"),
				EdgeBreakingPct:       rw.float("edge_breaking_pct"),
				PatchesPerKM:          rw.float("patches_per_km"),
			},
		})
	}

	return roads, nil
}

// LoadInspections reads the inspection history CSV at path.
func LoadInspections(path string) ([]models.InspectionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inspections csv: %w", err)
	}
	defer f.Close()

	return ReadInspections(f)
}

// ReadInspections parses inspection records. A row with an unparseable
// date is skipped with a log line; one malformed record must not sink the
// rest of the import.
func ReadInspections(r io.Reader) ([]models.InspectionRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingHeader, err)
	}

	index := headerIndex(header)

	var records []models.InspectionRecord

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read inspections csv: %w", err)
		}

		rw := row{index: index, fields: fields}

		roadID := rw.str("road_id")
		if roadID == "" {
			log.Printf("registry: skipping inspection row without road_id")
			continue
		}

		date, ok := parseDate(rw.str("date"))
		if !ok {
			log.Printf("registry: skipping inspection %q for road %s: bad date %q",
				rw.str("id"), roadID, rw.str("date"))
			continue
		}

		records = append(records, models.InspectionRecord{
			ID:               rw.str("id"),
			RoadID:           roadID,
			Date:             date,
			Agency:           rw.str("agency"),
			ConditionScore:   rw.float("condition_score"),
			SurfaceDamagePct: rw.float("surface_damage_pct"),
			Waterlogging:     rw.boolean("waterlogging"),
			DrainageStatus:   rw.str("drainage_status"),
			Remarks:          rw.str("remarks"),
		})
	}

	return records, nil
}

// JoinInspections attaches records to roads by road id. Survey exports and
// the registry disagree on id formats often enough that an exact-match
// miss falls back to comparing trailing numeric suffixes. That fallback is
// a known data-quality affordance; every use of it is logged.
func JoinInspections(roads []models.RoadAsset, records []models.InspectionRecord) []models.RoadAsset {
	exact := make(map[string]int, len(roads))
	bySuffix := make(map[string]int, len(roads))

	for i := range roads {
		exact[roads[i].RoadID] = i

		if suffix := numericSuffix(roads[i].RoadID); suffix != "" {
			bySuffix[suffix] = i
		}
	}

	// Clone each road so appends below never write into a backing array
	// the caller still holds.
	joined := make([]models.RoadAsset, len(roads))
	for i := range roads {
		joined[i] = roads[i].Clone()
	}

	for _, rec := range records {
		i, ok := exact[rec.RoadID]
		if !ok {
			suffix := numericSuffix(rec.RoadID)

			i, ok = bySuffix[suffix]
			if !ok || suffix == "" {
				log.Printf("registry: inspection %s references unknown road %s", rec.ID, rec.RoadID)
				continue
			}

			log.Printf("registry: joined inspection %s to road %s via numeric suffix %s",
				rec.ID, joined[i].RoadID, suffix)
		}

		joined[i].Inspections = append(joined[i].Inspections, rec)
	}

	return joined
}

func numericSuffix(id string) string {
	match := trailingDigits.FindStringSubmatch(id)
	if match == nil {
		return ""
	}

	// Strip leading zeros so "007" and "7" compare equal.
	return strings.TrimLeft(match[1], "0")
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))

	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	return index
}
