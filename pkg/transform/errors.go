package transform

import "errors"

// Sentinel errors for scale-factor derivation and option validation.
var (
	// ErrNoTargetSpecified is returned when a scale factor is requested without any target.
	ErrNoTargetSpecified = errors.New("no target dimensions specified")

	// ErrDegenerateScale is returned when the current extent is zero or the
	// resulting factor is not a positive finite number.
	ErrDegenerateScale = errors.New("invalid scale factor")

	// ErrConflictingTargets is returned when mutually exclusive scale inputs are combined.
	ErrConflictingTargets = errors.New("conflicting scale options")
)
