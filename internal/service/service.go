// Package service is the mutation façade: the single surface through which
// UI flows read and change site state. Every operation is one synchronous
// load-validate-mutate-save cycle; the acting identity is resolved from the
// session at the top of the operation and passed down explicitly.
package service

import (
	"errors"

	"studysite/internal/ratelimit"
	"studysite/internal/store"
)

var ErrRateLimited = errors.New("too many attempts")

type Service struct {
	store   *store.Store
	secret  string
	limiter *ratelimit.Limiter
}

// New wires the façade over st. secret signs session tokens.
func New(st *store.Store, secret string) *Service {
	return &Service{
		store:   st,
		secret:  secret,
		limiter: ratelimit.New(5, 10), // per-username budget for credential ops
	}
}
