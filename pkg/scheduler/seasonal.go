// Package scheduler pkg/scheduler/seasonal.go
package scheduler

import "github.com/VedantChandore/crcms/pkg/models"

// SeasonalMultiplier returns the monsoon interval multiplier for a road.
// With monsoon mode off it is exactly 1.0; no partial effect may leak
// through, since tests and exports compare intervals across modes.
func SeasonalMultiplier(cfg SeasonalConfig, road models.RoadAsset, monsoonMode bool) float64 {
	if !monsoonMode {
		return 1.0
	}

	multiplier := 1.0

	if road.RainfallCategory == models.RainfallHigh {
		multiplier *= cfg.HighRainfallFactor
	}

	if road.FloodProne {
		multiplier *= cfg.FloodProneFactor
	}

	if road.LandslideProne {
		multiplier *= cfg.LandslideFactor
	}

	if road.GhatSection {
		multiplier *= cfg.GhatSectionFactor
	}

	if road.RegionType == "coastal" {
		multiplier *= cfg.CoastalFactor
	}

	if multiplier < cfg.Floor {
		multiplier = cfg.Floor
	}

	return multiplier
}
