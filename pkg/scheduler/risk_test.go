package scheduler

import (
	"testing"
	"time"

	"github.com/VedantChandore/crcms/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func TestAnalyzeRisk(t *testing.T) {
	cfg := DefaultConfig().Risk

	t.Run("benign road has no factors and unit multiplier", func(t *testing.T) {
		road := models.RoadAsset{
			RoadID:           "NH48-001",
			SurfaceType:      models.SurfaceConcrete,
			YearConstructed:  2024,
			RainfallCategory: models.RainfallLow,
			ConditionScore:   85,
		}

		factors, mult := AnalyzeRisk(cfg, road, testNow)

		assert.Empty(t, factors)
		assert.Equal(t, 1.0, mult)
	})

	t.Run("each qualifying condition adds one tag", func(t *testing.T) {
		road := models.RoadAsset{
			RoadID:           "NH48-002",
			SurfaceType:      models.SurfaceBitumen,
			YearConstructed:  2020,
			RainfallCategory: models.RainfallHigh,
			FloodProne:       true,
			GhatSection:      true,
			ConditionScore:   70,
		}

		factors, mult := AnalyzeRisk(cfg, road, testNow)

		require.Len(t, factors, 3)
		assert.InDelta(t, cfg.FloodProneFactor*cfg.GhatSectionFactor*cfg.HighRainfallFactor, mult, 0.001)
	})

	t.Run("tag order is stable", func(t *testing.T) {
		road := models.RoadAsset{
			RoadID:           "NH48-003",
			SurfaceType:      models.SurfaceBitumen,
			YearConstructed:  2020,
			RainfallCategory: models.RainfallHigh,
			FloodProne:       true,
			LandslideProne:   true,
			ConditionScore:   70,
		}

		factors, _ := AnalyzeRisk(cfg, road, testNow)

		require.Len(t, factors, 3)
		assert.Equal(t, "Flood-prone zone", factors[0])
		assert.Equal(t, "Landslide-prone zone", factors[1])
		assert.Equal(t, "High monsoon rainfall", factors[2])
	})

	t.Run("multiplier never drops below the floor", func(t *testing.T) {
		road := models.RoadAsset{
			RoadID:           "NH48-004",
			SurfaceType:      models.SurfaceEarthen,
			YearConstructed:  1990,
			RainfallCategory: models.RainfallHigh,
			FloodProne:       true,
			LandslideProne:   true,
			GhatSection:      true,
			TourismRoute:     true,
			TerrainType:      "steep",
			AvgDailyTraffic:  50000,
			TruckPercentage:  45,
			ConditionScore:   10,
			Distress: models.DistressMetrics{
				PotholesPerKM:        25,
				AlligatorCrackingPct: 30,
				RuttingDepthMM:       35,
			},
		}

		factors, mult := AnalyzeRisk(cfg, road, testNow)

		assert.Greater(t, len(factors), 10)
		assert.Equal(t, cfg.Floor, mult)
	})

	t.Run("end of design life by surface type", func(t *testing.T) {
		// Bitumen design life 20y, trigger at 16y.
		fresh := models.RoadAsset{
			RoadID: "r", SurfaceType: models.SurfaceBitumen,
			YearConstructed: 2015, ConditionScore: 80,
		}
		aged := fresh
		aged.YearConstructed = 2010

		factors, _ := AnalyzeRisk(cfg, fresh, testNow)
		assert.NotContains(t, factors, "Near end of design life")

		factors, _ = AnalyzeRisk(cfg, aged, testNow)
		assert.Contains(t, factors, "Near end of design life")
	})

	t.Run("unknown construction year never triggers end of life", func(t *testing.T) {
		road := models.RoadAsset{
			RoadID: "r", SurfaceType: models.SurfaceBitumen, ConditionScore: 80,
		}

		factors, _ := AnalyzeRisk(cfg, road, testNow)
		assert.NotContains(t, factors, "Near end of design life")
	})
}

func TestSeasonalMultiplier(t *testing.T) {
	cfg := DefaultConfig().Seasonal

	hazardous := models.RoadAsset{
		RainfallCategory: models.RainfallHigh,
		FloodProne:       true,
		LandslideProne:   true,
		GhatSection:      true,
		RegionType:       "coastal",
	}

	t.Run("monsoon off is exactly one for any road", func(t *testing.T) {
		assert.Equal(t, 1.0, SeasonalMultiplier(cfg, hazardous, false))
		assert.Equal(t, 1.0, SeasonalMultiplier(cfg, models.RoadAsset{}, false))
	})

	t.Run("monsoon on compounds penalties", func(t *testing.T) {
		road := models.RoadAsset{RainfallCategory: models.RainfallHigh, FloodProne: true}

		got := SeasonalMultiplier(cfg, road, true)
		assert.InDelta(t, cfg.HighRainfallFactor*cfg.FloodProneFactor, got, 0.001)
	})

	t.Run("all penalties compound for a fully exposed road", func(t *testing.T) {
		want := cfg.HighRainfallFactor * cfg.FloodProneFactor *
			cfg.LandslideFactor * cfg.GhatSectionFactor * cfg.CoastalFactor

		assert.InDelta(t, want, SeasonalMultiplier(cfg, hazardous, true), 0.001)
		assert.GreaterOrEqual(t, SeasonalMultiplier(cfg, hazardous, true), cfg.Floor)
	})

	t.Run("monsoon multiplier floors at 0.3", func(t *testing.T) {
		harsh := cfg
		harsh.HighRainfallFactor = 0.3
		harsh.FloodProneFactor = 0.3

		got := SeasonalMultiplier(harsh, hazardous, true)

		assert.Equal(t, harsh.Floor, got)
	})

	t.Run("unaffected road is neutral even in monsoon", func(t *testing.T) {
		road := models.RoadAsset{RainfallCategory: models.RainfallLow}

		assert.Equal(t, 1.0, SeasonalMultiplier(cfg, road, true))
	})
}
