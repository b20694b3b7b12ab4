package domain

import "errors"

// Storage error kinds. Repositories translate backend-specific failures into
// these exactly once at the gateway boundary; usecases only ever check with
// errors.Is and never inspect driver codes.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate record")
)
