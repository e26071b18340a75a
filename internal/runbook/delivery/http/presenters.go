package http

import (
	"time"

	"webhook-ops/internal/model"
	"webhook-ops/internal/runbook"
)

// --- Request DTOs ---

type createReq struct {
	Name   string   `json:"name"   binding:"required,min=1,max=255"`
	Source string   `json:"source" binding:"required,min=1,max=100"`
	Steps  []string `json:"steps"  binding:"required,min=1,dive,required"`
	Active *bool    `json:"active"`
}

func (r createReq) toInput() runbook.CreateRunbookInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return runbook.CreateRunbookInput{
		Name:   r.Name,
		Source: r.Source,
		Steps:  r.Steps,
		Active: active,
	}
}

type listReq struct {
	Source     string `form:"source"`
	ActiveOnly bool   `form:"active_only"`
	Limit      int    `form:"limit"`
}

func (r listReq) toInput() runbook.ListRunbooksInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return runbook.ListRunbooksInput{
		Source:     r.Source,
		ActiveOnly: r.ActiveOnly,
		Limit:      limit,
	}
}

type updateReq struct {
	Name   *string  `json:"name"   binding:"omitempty,min=1,max=255"`
	Source *string  `json:"source" binding:"omitempty,min=1,max=100"`
	Steps  []string `json:"steps"  binding:"omitempty,min=1,dive,required"`
	Active *bool    `json:"active"`
}

func (r updateReq) toInput(id string) runbook.UpdateRunbookInput {
	return runbook.UpdateRunbookInput{
		ID:     id,
		Name:   r.Name,
		Source: r.Source,
		Steps:  r.Steps,
		Active: r.Active,
	}
}

// --- Response DTOs ---

type runbookResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Steps     []string  `json:"steps"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newRunbookResp(rb model.Runbook) runbookResp {
	return runbookResp{
		ID:        rb.ID,
		Name:      rb.Name,
		Source:    rb.Source,
		Steps:     rb.Steps,
		Active:    rb.Active,
		CreatedAt: rb.CreatedAt,
		UpdatedAt: rb.UpdatedAt,
	}
}

type listResp struct {
	Runbooks []runbookResp `json:"runbooks"`
	Count    int           `json:"count"`
}

func (h *handler) newListResp(runbooks []model.Runbook) listResp {
	out := make([]runbookResp, len(runbooks))
	for i, rb := range runbooks {
		out[i] = newRunbookResp(rb)
	}
	return listResp{Runbooks: out, Count: len(out)}
}
