package middleware

import (
	"webhook-ops/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
}

func New(l log.Logger, internalKey string) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
	}
}
