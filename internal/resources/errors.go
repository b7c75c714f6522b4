package resources

import "errors"

// Resolution errors
var (
	ErrResourceNotFound    = errors.New("bundled resource not found")
	ErrUnsupportedLocation = errors.New("resources not available at a usable location")
	ErrUnknownMode         = errors.New("no such resource mode")
)
