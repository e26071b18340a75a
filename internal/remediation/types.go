package remediation

import (
	"webhook-ops/internal/model"
)

// --- UseCase Outputs ---

type HandleAlertOutput struct {
	Alert   model.Alert
	Actions []model.RemediationAction
	Summary Summary
}

// Summary aggregates an executed action set.
type Summary struct {
	Total      int
	Successful int
	Failed     int
	ByType     map[string]int
}

// Summarize folds a set of executed actions into counts. Pure.
func Summarize(actions []model.RemediationAction) Summary {
	s := Summary{
		Total:  len(actions),
		ByType: make(map[string]int),
	}
	for _, a := range actions {
		if a.Success {
			s.Successful++
		} else {
			s.Failed++
		}
		s.ByType[a.Type]++
	}
	return s
}
