package http

import (
	"time"

	"webhook-ops/internal/alert"
	"webhook-ops/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title              string                 `json:"title"    binding:"required,min=1,max=255"`
	Message            string                 `json:"message"  binding:"max=2000"`
	Severity           string                 `json:"severity" binding:"required,oneof=critical warning info"`
	Category           string                 `json:"category" binding:"required,oneof=webhook payment system user security"`
	Source             string                 `json:"source"   binding:"max=100"`
	Metadata           map[string]interface{} `json:"metadata"`
	AutoDismissMinutes int                    `json:"auto_dismiss_minutes" binding:"omitempty,min=1"`
}

func (r createReq) toInput() alert.CreateAlertInput {
	return alert.CreateAlertInput{
		Title:              r.Title,
		Message:            r.Message,
		Severity:           model.AlertSeverity(r.Severity),
		Category:           model.AlertCategory(r.Category),
		Source:             r.Source,
		Metadata:           r.Metadata,
		AutoDismissMinutes: r.AutoDismissMinutes,
	}
}

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,oneof=active dismissed"`
	Category string `form:"category" binding:"omitempty,oneof=webhook payment system user security"`
	Severity string `form:"severity" binding:"omitempty,oneof=critical warning info"`
	Limit    int    `form:"limit"`
}

func (r listReq) toInput() alert.ListAlertsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return alert.ListAlertsInput{
		Status:   model.AlertStatus(r.Status),
		Category: model.AlertCategory(r.Category),
		Severity: model.AlertSeverity(r.Severity),
		Limit:    limit,
	}
}

// --- Response DTOs ---

type alertResp struct {
	ID                string                 `json:"id"`
	Title             string                 `json:"title"`
	Message           string                 `json:"message"`
	Severity          string                 `json:"severity"`
	Category          string                 `json:"category"`
	Status            string                 `json:"status"`
	Source            string                 `json:"source,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	CreatedBy         string                 `json:"created_by"`
	DismissedAt       *time.Time             `json:"dismissed_at,omitempty"`
	DismissedBy       string                 `json:"dismissed_by,omitempty"`
	AutoDismissAt     *time.Time             `json:"auto_dismiss_at,omitempty"`
	AutoProcessedAt   *time.Time             `json:"auto_processed_at,omitempty"`
	LastActionSummary string                 `json:"last_action_summary,omitempty"`
}

func newAlertResp(a model.Alert) alertResp {
	return alertResp{
		ID:                a.ID,
		Title:             a.Title,
		Message:           a.Message,
		Severity:          string(a.Severity),
		Category:          string(a.Category),
		Status:            string(a.Status),
		Source:            a.Source,
		Metadata:          a.Metadata,
		CreatedAt:         a.CreatedAt,
		CreatedBy:         a.CreatedBy,
		DismissedAt:       a.DismissedAt,
		DismissedBy:       a.DismissedBy,
		AutoDismissAt:     a.AutoDismissAt,
		AutoProcessedAt:   a.AutoProcessedAt,
		LastActionSummary: a.LastActionSummary,
	}
}

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

type listResp struct {
	Alerts []alertResp `json:"alerts"`
	Count  int         `json:"count"`
}

func (h *handler) newListResp(alerts []model.Alert) listResp {
	out := make([]alertResp, len(alerts))
	for i, a := range alerts {
		out[i] = newAlertResp(a)
	}
	return listResp{Alerts: out, Count: len(out)}
}

type detailResp struct {
	Alert   alertResp    `json:"alert"`
	Actions []actionResp `json:"actions"`
}

func (h *handler) newDetailResp(out alert.DetailAlertOutput) detailResp {
	actions := make([]actionResp, len(out.Actions))
	for i, a := range out.Actions {
		actions[i] = newActionResp(a)
	}
	return detailResp{Alert: newAlertResp(out.Alert), Actions: actions}
}
