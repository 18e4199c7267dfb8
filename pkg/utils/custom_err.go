package utils

import "errors"

var (
	ErrTooFewLocations = errors.New("at least 2 locations required")
	ErrNoRoute         = errors.New("directions response contains no route")
	ErrLegMismatch     = errors.New("route legs do not line up with the requested locations")
	ErrDatabaseError   = errors.New("database error")
)
