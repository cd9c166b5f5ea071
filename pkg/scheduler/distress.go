// Package scheduler pkg/scheduler/distress.go
package scheduler

import "github.com/VedantChandore/crcms/pkg/models"

// DistressSeverity collapses the nine raw distress measurements into a
// single 0-100 composite. Each measurement is normalised against its
// engineering ceiling, weighted by importance (weights sum to 100) and
// summed. With CapRatios set, each normalised term is capped at 1.0 so no
// single measurement can contribute more than its weight.
func DistressSeverity(cfg DistressConfig, d models.DistressMetrics) float64 {
	ratio := func(value, ceiling float64) float64 {
		if value <= 0 || ceiling <= 0 {
			return 0
		}

		r := value / ceiling
		if cfg.CapRatios && r > 1 {
			r = 1
		}

		return r
	}

	severity := cfg.PotholeWeight*ratio(d.PotholesPerKM, cfg.PotholeCeiling) +
		cfg.AlligatorWeight*ratio(d.AlligatorCrackingPct, cfg.AlligatorCeiling) +
		cfg.RuttingWeight*ratio(d.RuttingDepthMM, cfg.RuttingCeiling) +
		cfg.LongitudinalWeight*ratio(d.CracksLongitudinalPct, cfg.LongitudinalCeiling) +
		cfg.TransverseWeight*ratio(d.CracksTransversePerKM, cfg.TransverseCeiling) +
		cfg.PotholeDepthWeight*ratio(d.PotholeAvgDepthCM, cfg.PotholeDepthCeiling) +
		cfg.RavelingWeight*ratio(d.RavelingPct, cfg.RavelingCeiling) +
		cfg.EdgeBreakingWeight*ratio(d.EdgeBreakingPct, cfg.EdgeBreakingCeiling) +
		cfg.PatchesWeight*ratio(d.PatchesPerKM, cfg.PatchesCeiling)

	if severity > 100 {
		severity = 100
	}

	if severity < 0 {
		severity = 0
	}

	return severity
}
