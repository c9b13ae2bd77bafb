package domain

import "errors"

// Configuration warnings: malformed user-supplied rules degrade to a
// skipped rule plus a log line, never a failed recompute.
var (
	ErrUnknownIntervalUnit = errors.New("unknown interval unit")
	ErrInvalidMagnitude    = errors.New("interval magnitude must be positive")
	ErrMalformedRule       = errors.New("malformed interval rule")
	ErrInvalidClockTime    = errors.New("invalid clock time")
	ErrInvalidTimeWindow   = errors.New("time window start must precede end")
)

// Transient store errors abort the whole recompute for a user; the
// daily sweep retries it.
var ErrStoreUnavailable = errors.New("persistent store unavailable")

var (
	ErrInvariantViolation = errors.New("scheduling invariant violated")
	ErrInvalidJobKey      = errors.New("invalid dispatch job key")
	ErrJobNotFound        = errors.New("dispatch job not found")
)

// IsConfigurationWarning reports whether err belongs to the non-fatal
// rule-configuration class.
func IsConfigurationWarning(err error) bool {
	return errors.Is(err, ErrUnknownIntervalUnit) ||
		errors.Is(err, ErrInvalidMagnitude) ||
		errors.Is(err, ErrMalformedRule) ||
		errors.Is(err, ErrInvalidClockTime) ||
		errors.Is(err, ErrInvalidTimeWindow)
}
