// Package auth provides the in-process token registry guarding the staff
// surface. Tokens are opaque UUIDs; the registry only answers whether a
// presented token is currently valid.
package auth

import (
	"context"
	"sync"

	"tableside/internal/pkg/errs"

	"github.com/google/uuid"
)

// TokenRegistry keeps the set of valid staff tokens in memory.
// Implements ports.Authorizer. Safe for concurrent use.
type TokenRegistry struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewTokenRegistry creates an empty registry.
func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{tokens: make(map[string]struct{})}
}

// Issue mints a fresh token and registers it.
func (r *TokenRegistry) Issue() string {
	token := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = struct{}{}

	return token
}

// Register adds a preconfigured token, such as one from the environment.
// The token must be a well-formed UUID so configured and issued tokens stay
// indistinguishable.
func (r *TokenRegistry) Register(token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("staff token", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = struct{}{}

	return nil
}

// Revoke removes a token. Revoking an unknown token is a no-op.
func (r *TokenRegistry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
}

// Authorize reports whether the presented token is currently registered.
func (r *TokenRegistry) Authorize(_ context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tokens[token]
	return ok, nil
}
