package event

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrNoReplayTarget       = errors.New("no replay target: event has no original target and none was given")
	ErrReplayDispatchFailed = errors.New("replay dispatch failed")
	ErrEmptyPayload         = errors.New("event payload is required")
)
