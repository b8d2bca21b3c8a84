// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlbuilder

import (
	"fmt"
)

// Predicate rules. Each rule computes the fragment/value pairs for one filter
// dimension given the current placeholder cursor (the count of placeholders
// already assigned; the next placeholder is cursor+1). The cursor is a plain
// parameter, never package state, so rules compose in whatever order the
// caller fixes and stay testable in isolation.

// TextMatch emits a case-insensitive substring predicate:
// `<column> ILIKE $n` bound to "%term%". The wildcards live in the bind
// value, not the SQL text, so the term can never break out of the statement.
// An empty term fails with ErrMissingFilter.
func TextMatch(column, term string, cursor int) (string, interface{}, error) {
	if term == "" {
		return "", nil, fmt.Errorf("%s: %w", column, ErrMissingFilter)
	}
	fragment := fmt.Sprintf("%s ILIKE $%d", column, cursor+1)
	return fragment, "%" + term + "%", nil
}

// NumericRange emits bound predicates for an optional min and/or max:
// `<column> >= $n` then `<column> <= $n`, in that order when both are set.
// Both bounds absent fails with ErrMissingFilter (the rule should not have
// been invoked), and min > max fails with ErrInvertedRange rather than
// silently matching nothing.
func NumericRange(column string, min, max *int, cursor int) ([]string, []interface{}, error) {
	if min == nil && max == nil {
		return nil, nil, fmt.Errorf("%s: %w", column, ErrMissingFilter)
	}
	if min != nil && max != nil && *min > *max {
		return nil, nil, fmt.Errorf("%s: %d > %d: %w", column, *min, *max, ErrInvertedRange)
	}

	var fragments []string
	var values []interface{}

	if min != nil {
		fragments = append(fragments, fmt.Sprintf("%s >= $%d", column, cursor+1))
		values = append(values, *min)
		cursor++
	}
	if max != nil {
		fragments = append(fragments, fmt.Sprintf("%s <= $%d", column, cursor+1))
		values = append(values, *max)
	}

	return fragments, values, nil
}

// PositiveFlag emits an exact-match sentinel predicate for a boolean filter:
// true means strictly positive (`<column> > $n` bound to 0), false means
// exactly zero (`<column> = $n` bound to 0). At the SQL level "false" and
// "unset" both compare against zero; callers only invoke this rule when the
// flag was explicitly supplied, so the distinction is preserved upstream.
func PositiveFlag(column string, positive bool, cursor int) (string, interface{}) {
	op := "="
	if positive {
		op = ">"
	}
	return fmt.Sprintf("%s %s $%d", column, op, cursor+1), 0
}
