package config

import "errors"

var (
	// ErrNotTable is returned when a document root is not a table
	ErrNotTable = errors.New("not a table")

	// ErrUnsupportedValue is returned for values git configuration cannot hold
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrNotFound is returned when a named or active profile does not exist
	ErrNotFound = errors.New("not found")
)
