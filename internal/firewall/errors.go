package firewall

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned when an address or port fails validation,
	// or when a rule would match neither. It never reaches the policy store.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrPolicyUnavailable is returned when the policy store cannot be
	// acquired or reached.
	ErrPolicyUnavailable = errors.New("firewall policy store unavailable")

	// ErrPermissionDenied is returned when the process lacks the rights to
	// change firewall policy.
	ErrPermissionDenied = errors.New("permission denied")
)

func invalidTarget(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidTarget, fmt.Sprintf(format, args...))
}

// storeError makes sure an error coming out of a policy store carries one of
// the package sentinels.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrPolicyUnavailable) ||
		errors.Is(err, ErrInvalidTarget) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPolicyUnavailable, err)
}

// unavailable marks an acquisition failure. The cause, privilege included,
// stays in the chain.
func unavailable(err error) error {
	if errors.Is(err, ErrPolicyUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPolicyUnavailable, err)
}
