package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrAlertNotFound = errors.New("alert not found")
)
