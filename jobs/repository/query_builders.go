// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"strings"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/hirewire/hirewire/jobs/models"
)

// compileJobFilter turns a JobFilter into a WHERE clause and bind values.
// Dimensions are visited in a fixed order regardless of how the caller
// populated the filter: title match, then minimum salary, then the equity
// flag. HasEquity only reaches the predicate rule when it was explicitly
// supplied; at the SQL level false compares equity to exactly zero.
func compileJobFilter(filter *models.JobFilter) (string, []interface{}, error) {
	if filter == nil {
		return "", nil, nil
	}

	cursor := 0
	var fragments []string
	var values []interface{}

	if filter.Title != nil {
		fragment, value, err := sqlbuilder.TextMatch("title", *filter.Title, cursor)
		if err != nil {
			return "", nil, err
		}
		fragments = append(fragments, fragment)
		values = append(values, value)
		cursor++
	}

	if filter.MinSalary != nil {
		rangeFragments, rangeValues, err := sqlbuilder.NumericRange("salary", filter.MinSalary, nil, cursor)
		if err != nil {
			return "", nil, err
		}
		fragments = append(fragments, rangeFragments...)
		values = append(values, rangeValues...)
		cursor += len(rangeValues)
	}

	if filter.HasEquity != nil {
		fragment, value := sqlbuilder.PositiveFlag("equity", *filter.HasEquity, cursor)
		fragments = append(fragments, fragment)
		values = append(values, value)
		cursor++
	}

	return strings.Join(fragments, " AND "), values, nil
}

// jobColumnNames translates request field names to physical columns for
// partial updates. Job fields happen to match their columns already; the
// empty table keeps the pass-through contract explicit.
var jobColumnNames = map[string]string{}
