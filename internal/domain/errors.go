package domain

import "errors"

// Domain errors.
var (
	ErrMalformedStore   = errors.New("translation store is not a flat string map")
	ErrNoCaptureGroup   = errors.New("extraction pattern must capture exactly one key group")
	ErrNoStores         = errors.New("no translation store configured")
	ErrEmptyPatternList = errors.New("extraction pattern list is empty")
)
