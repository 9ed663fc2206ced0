// Package common provides shared utilities and types used across the
// application.
package common

import "errors"

// ErrNotFound is returned when a record lookup matches no rows.
var ErrNotFound = errors.New("not found")
