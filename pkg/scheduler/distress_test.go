package scheduler

import (
	"testing"

	"github.com/VedantChandore/crcms/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDistressSeverity(t *testing.T) {
	cfg := DefaultConfig().Distress

	t.Run("no distress scores zero", func(t *testing.T) {
		assert.Zero(t, DistressSeverity(cfg, models.DistressMetrics{}))
	})

	t.Run("all metrics at ceiling scores 100", func(t *testing.T) {
		d := models.DistressMetrics{
			PotholesPerKM:         cfg.PotholeCeiling,
			PotholeAvgDepthCM:     cfg.PotholeDepthCeiling,
			CracksLongitudinalPct: cfg.LongitudinalCeiling,
			CracksTransversePerKM: cfg.TransverseCeiling,
			AlligatorCrackingPct:  cfg.AlligatorCeiling,
			RuttingDepthMM:        cfg.RuttingCeiling,
			RavelingPct:           cfg.RavelingCeiling,
			EdgeBreakingPct:       cfg.EdgeBreakingCeiling,
			PatchesPerKM:          cfg.PatchesCeiling,
		}

		assert.InDelta(t, 100, DistressSeverity(cfg, d), 0.001)
	})

	t.Run("capped ratio bounds a single extreme metric at its weight", func(t *testing.T) {
		d := models.DistressMetrics{PotholesPerKM: 10 * cfg.PotholeCeiling}

		assert.InDelta(t, cfg.PotholeWeight, DistressSeverity(cfg, d), 0.001)
	})

	t.Run("uncapped variant lets an extreme metric dominate but clamps at 100", func(t *testing.T) {
		uncapped := cfg
		uncapped.CapRatios = false

		d := models.DistressMetrics{PotholesPerKM: 10 * cfg.PotholeCeiling}

		assert.InDelta(t, 100, DistressSeverity(uncapped, d), 0.001)
	})

	t.Run("half distress is half the weight sum", func(t *testing.T) {
		d := models.DistressMetrics{
			PotholesPerKM:        cfg.PotholeCeiling / 2,
			AlligatorCrackingPct: cfg.AlligatorCeiling / 2,
		}

		want := (cfg.PotholeWeight + cfg.AlligatorWeight) / 2
		assert.InDelta(t, want, DistressSeverity(cfg, d), 0.001)
	})
}
