// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package sqlbuilder turns sparse, partially-populated inputs into
// positionally-parameterized SQL text and a matching bind-value list.
//
// Two compilers live here: a partial-update compiler producing SET clauses,
// and a set of predicate rules producing WHERE clauses. Both are pure
// functions: every value is bound through a $n placeholder (never spliced
// into the SQL text), fragment i always pairs with value i, and the
// placeholder cursor is threaded explicitly so composed clauses never reuse
// or skip an index.
package sqlbuilder

import (
	"fmt"
	"strings"
)

// Field is a single logical-field/new-value pair in a partial update.
type Field struct {
	Name  string
	Value interface{}
}

// Fields is an ordered list of update fields. Order matters: placeholders are
// assigned in list order, so callers control the shape of the generated SQL.
type Fields []Field

// Add appends a field and returns the extended list, allowing chained
// construction: sqlbuilder.Fields{}.Add("name", v).Add("logo_url", u).
func (f Fields) Add(name string, value interface{}) Fields {
	return append(f, Field{Name: name, Value: value})
}

// CompileUpdate builds the SET clause of a single-row UPDATE from an ordered
// field list. Each field emits `"<column>"=$n` with n assigned 1-based in
// list order; the returned values align index-for-index with the fragments.
//
// columnNames translates a logical field name to its physical column; a name
// absent from the map passes through verbatim. An empty field list fails with
// ErrNoFields: a naive caller would otherwise build a syntactically invalid
// statement.
func CompileUpdate(fields Fields, columnNames map[string]string) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	fragments := make([]string, 0, len(fields))
	values := make([]interface{}, 0, len(fields))

	for i, field := range fields {
		column := field.Name
		if mapped, ok := columnNames[field.Name]; ok {
			column = mapped
		}
		fragments = append(fragments, fmt.Sprintf(`"%s"=$%d`, column, i+1))
		values = append(values, field.Value)
	}

	return strings.Join(fragments, ", "), values, nil
}
