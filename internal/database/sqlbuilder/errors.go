// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlbuilder

import "errors"

// Compile-time validation errors. All of them are raised synchronously while
// building a clause, never deferred to statement execution, and handlers map
// them to 400-class responses.
var (
	// ErrNoFields is returned when a partial update is compiled with no fields.
	ErrNoFields = errors.New("no fields to update")

	// ErrMissingFilter is returned when a predicate rule is invoked without
	// any of its required inputs.
	ErrMissingFilter = errors.New("missing required filter value")

	// ErrInvertedRange is returned when a numeric range has min > max.
	ErrInvertedRange = errors.New("range minimum exceeds maximum")
)
