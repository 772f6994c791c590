package core

import "errors"

// Sentinel errors for caller mistakes. Handlers map these to HTTP 400;
// everything else coming out of a service is a data-access failure (500).
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidDate      = errors.New("invalid calendar date")
)
