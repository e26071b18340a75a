package http

import (
	"encoding/json"
	"time"

	"webhook-ops/internal/event"
	"webhook-ops/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Source   string `form:"source"`
	Verified *bool  `form:"verified"`
	Limit    int    `form:"limit"`
}

func (r listReq) toInput() event.ListEventsInput {
	limit := r.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return event.ListEventsInput{
		Source:   r.Source,
		Verified: r.Verified,
		Limit:    limit,
	}
}

type replayReq struct {
	EventID   string `json:"-"` // populated from URI param
	TargetURL string `json:"target_url" binding:"omitempty,url"`
}

func (r replayReq) toInput() event.ReplayInput {
	return event.ReplayInput{
		EventID:   r.EventID,
		TargetURL: r.TargetURL,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID             string          `json:"id"`
	Source         string          `json:"source"`
	ReceivedAt     time.Time       `json:"received_at"`
	Verified       bool            `json:"verified"`
	SignatureValid *bool           `json:"signature_valid"`
	Payload        json.RawMessage `json:"payload"`
	PayloadSize    int             `json:"payload_size"`
	Error          string          `json:"error,omitempty"`
	ReplayCount    int             `json:"replay_count"`
	LastReplayAt   *time.Time      `json:"last_replay_at,omitempty"`
	ReplayOf       string          `json:"replay_of,omitempty"`
	TargetURL      string          `json:"target_url,omitempty"`
}

func newEventResp(ev model.InboundEvent) eventResp {
	return eventResp{
		ID:             ev.ID,
		Source:         ev.Source,
		ReceivedAt:     ev.ReceivedAt,
		Verified:       ev.Verified,
		SignatureValid: ev.SignatureValid,
		Payload:        ev.Payload,
		PayloadSize:    ev.PayloadSize,
		Error:          ev.Error,
		ReplayCount:    ev.ReplayCount,
		LastReplayAt:   ev.LastReplayAt,
		ReplayOf:       ev.ReplayOf,
		TargetURL:      ev.TargetURL,
	}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func (h *handler) newListResp(events []model.InboundEvent) listResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev)
	}
	return listResp{Events: out, Count: len(out)}
}
