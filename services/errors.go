package services

import "errors"

// Boundary errors for references to rows that must already exist.
// Duplicate likes and matches are deliberately not errors; the stores
// report them as a non-created outcome instead.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrCardNotFound    = errors.New("card not found")
)
