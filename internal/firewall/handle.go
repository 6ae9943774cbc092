package firewall

import (
	"errors"
	"fmt"
	"sync"
)

// PolicyHandle is the single connection to the policy store. The store is
// opened on first use and reused for the lifetime of the handle.
type PolicyHandle struct {
	open Opener

	mu    sync.Mutex
	store PolicyStore
}

func NewPolicyHandle(open Opener) *PolicyHandle {
	return &PolicyHandle{open: open}
}

// Acquire returns the open store, opening it if this is the first call.
// A failed open is not remembered; the next caller tries again.
func (h *PolicyHandle) Acquire() (PolicyStore, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store != nil {
		return h.store, nil
	}

	if h.open == nil {
		return nil, fmt.Errorf("%w: no policy store configured", ErrPolicyUnavailable)
	}

	store, err := h.open()
	if err != nil {
		if errors.Is(err, ErrPolicyUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrPolicyUnavailable, err)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: opener returned no store", ErrPolicyUnavailable)
	}

	h.store = store
	return store, nil
}
