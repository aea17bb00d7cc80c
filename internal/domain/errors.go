package domain

import "errors"

var (
	// ErrInvalidRange is returned by InCounterRange when start is after end.
	ErrInvalidRange = errors.New("invalid counter range")

	// ErrUnknownDefUse means instrumentation reported a definition or use id that
	// static analysis never registered. The trace is unusable afterwards.
	ErrUnknownDefUse = errors.New("unknown definition/use id")

	// ErrContractViolation is returned for malformed instrumentation input such as
	// negative distances.
	ErrContractViolation = errors.New("instrumentation contract violation")
)
