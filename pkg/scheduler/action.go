// Package scheduler pkg/scheduler/action.go
package scheduler

import "github.com/VedantChandore/crcms/pkg/models"

// ActionInput carries the classifier inputs for one road.
type ActionInput struct {
	Band             models.Band
	IsOverdue        bool
	OverdueDays      int
	ConditionScore   float64
	DistressSeverity float64
}

// ClassifyAction maps a road's state to exactly one recommended action.
// The conditions overlap, so evaluation order matters: first match wins.
func ClassifyAction(cfg ActionConfig, in ActionInput) models.ActionType {
	switch {
	case in.Band == models.BandE ||
		(in.OverdueDays > cfg.EmergencyOverdueDays && in.ConditionScore < cfg.EmergencyScore):
		return models.ActionEmergency

	case in.Band == models.BandD ||
		in.OverdueDays > cfg.UrgentOverdueDays ||
		in.DistressSeverity > cfg.UrgentDistress:
		return models.ActionUrgent

	case in.IsOverdue || in.DistressSeverity > cfg.RoutineDistress:
		return models.ActionRoutine

	case in.Band == models.BandB || in.Band == models.BandC:
		return models.ActionPreventive

	default:
		return models.ActionMonitoring
	}
}

// AssignAgency routes an action to the responsible maintenance body.
// Emergency and urgent work escalates: NHAI keeps its own roads, everything
// else goes to the state public-works department.
func AssignAgency(jurisdiction string, action models.ActionType) string {
	if action == models.ActionEmergency || action == models.ActionUrgent {
		if jurisdiction == models.JurisdictionNHAI {
			return models.JurisdictionNHAI
		}

		return models.JurisdictionStatePWD
	}

	switch jurisdiction {
	case models.JurisdictionNHAI:
		return models.JurisdictionNHAI
	case models.JurisdictionMSRDC:
		return models.JurisdictionMSRDC
	default:
		return models.JurisdictionStatePWD
	}
}
