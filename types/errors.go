// SPDX-License-Identifier: MIT
package types

import "errors"

// Validation errors shared by the katas packages.
//
// Package specific errors wrap these so callers may test with errors.Is against either.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrOutOfRange      = errors.New("out of range")

	// ErrCycle is returned when links form a loop where a finite chain is required.
	ErrCycle = errors.New("links form a cycle")
)
