package http

import (
	"time"

	"webhook-ops/internal/model"
	"webhook-ops/internal/remediation"
)

// --- Response DTOs ---

type actionResp struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExecutedAt  time.Time `json:"executed_at"`
}

func newActionResp(a model.RemediationAction) actionResp {
	return actionResp{
		ID:          a.ID,
		Type:        a.Type,
		Description: a.Description,
		Success:     a.Success,
		Error:       a.Error,
		ExecutedAt:  a.ExecutedAt,
	}
}

type summaryResp struct {
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
	ByType     map[string]int `json:"by_type"`
}

type autoProcessResp struct {
	AlertID string       `json:"alert_id"`
	Actions []actionResp `json:"actions"`
	Summary summaryResp  `json:"summary"`
}

func newAutoProcessResp(out remediation.HandleAlertOutput) autoProcessResp {
	actions := make([]actionResp, len(out.Actions))
	for i, a := range out.Actions {
		actions[i] = newActionResp(a)
	}
	return autoProcessResp{
		AlertID: out.Alert.ID,
		Actions: actions,
		Summary: summaryResp{
			Total:      out.Summary.Total,
			Successful: out.Summary.Successful,
			Failed:     out.Summary.Failed,
			ByType:     out.Summary.ByType,
		},
	}
}
