// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"strings"

	"github.com/hirewire/hirewire/companies/models"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
)

// compileCompanyFilter turns a CompanyFilter into a WHERE clause and bind
// values. Dimensions are visited in a fixed order regardless of how the
// caller populated the filter: name match, then the employee-count range.
// When nothing is set the clause is empty and the caller must omit the WHERE
// keyword entirely.
func compileCompanyFilter(filter *models.CompanyFilter) (string, []interface{}, error) {
	if filter == nil {
		return "", nil, nil
	}

	cursor := 0
	var fragments []string
	var values []interface{}

	if filter.Name != nil {
		fragment, value, err := sqlbuilder.TextMatch("name", *filter.Name, cursor)
		if err != nil {
			return "", nil, err
		}
		fragments = append(fragments, fragment)
		values = append(values, value)
		cursor++
	}

	if filter.MinEmployees != nil || filter.MaxEmployees != nil {
		rangeFragments, rangeValues, err := sqlbuilder.NumericRange("num_employees", filter.MinEmployees, filter.MaxEmployees, cursor)
		if err != nil {
			return "", nil, err
		}
		fragments = append(fragments, rangeFragments...)
		values = append(values, rangeValues...)
		cursor += len(rangeValues)
	}

	return strings.Join(fragments, " AND "), values, nil
}

// companyColumnNames translates request field names to physical columns for
// partial updates.
var companyColumnNames = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}
