package domain

import "errors"

// Sentinel errors shared across layers. Match with errors.Is.
var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a control value is out of range or unparsable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrViewClosed is returned by transitions on a view that has been unmounted.
	ErrViewClosed = errors.New("view closed")

	// ErrUpstream wraps every failure to obtain the offer list from the upstream endpoint.
	ErrUpstream = errors.New("upstream offer list unavailable")
)
