// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileUpdate(t *testing.T) {
	t.Run("single field with translation", func(t *testing.T) {
		fields := Fields{}.Add("numEmployees", 32)

		clause, values, err := CompileUpdate(fields, map[string]string{
			"numEmployees": "num_employees",
		})
		require.NoError(t, err)
		assert.Equal(t, `"num_employees"=$1`, clause)
		assert.Equal(t, []interface{}{32}, values)
	})

	t.Run("multiple fields keep input order", func(t *testing.T) {
		fields := Fields{}.
			Add("firstName", "Aliya").
			Add("age", 32)

		clause, values, err := CompileUpdate(fields, map[string]string{
			"firstName": "first_name",
		})
		require.NoError(t, err)
		assert.Equal(t, `"first_name"=$1, "age"=$2`, clause)
		assert.Equal(t, []interface{}{"Aliya", 32}, values)
	})

	t.Run("name not in translation table passes through verbatim", func(t *testing.T) {
		fields := Fields{}.Add("description", "software maker")

		clause, values, err := CompileUpdate(fields, map[string]string{
			"numEmployees": "num_employees",
		})
		require.NoError(t, err)
		assert.Equal(t, `"description"=$1`, clause)
		assert.Equal(t, []interface{}{"software maker"}, values)
	})

	t.Run("nil translation table", func(t *testing.T) {
		fields := Fields{}.Add("name", "Acme")

		clause, values, err := CompileUpdate(fields, nil)
		require.NoError(t, err)
		assert.Equal(t, `"name"=$1`, clause)
		assert.Equal(t, []interface{}{"Acme"}, values)
	})

	t.Run("empty field list fails", func(t *testing.T) {
		_, _, err := CompileUpdate(Fields{}, map[string]string{"a": "b"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoFields)

		_, _, err = CompileUpdate(nil, nil)
		assert.ErrorIs(t, err, ErrNoFields)
	})

	t.Run("placeholder count matches field count", func(t *testing.T) {
		fields := Fields{}.
			Add("title", "Engineer").
			Add("salary", 120000).
			Add("equity", 0.02).
			Add("company_handle", "acme")

		clause, values, err := CompileUpdate(fields, nil)
		require.NoError(t, err)
		assert.Equal(t, `"title"=$1, "salary"=$2, "equity"=$3, "company_handle"=$4`, clause)
		assert.Len(t, values, 4)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		fields := Fields{}.Add("name", "Acme").Add("logoUrl", "http://a.io/l.png")
		translation := map[string]string{"logoUrl": "logo_url"}

		clause1, values1, err := CompileUpdate(fields, translation)
		require.NoError(t, err)
		clause2, values2, err := CompileUpdate(fields, translation)
		require.NoError(t, err)

		assert.Equal(t, clause1, clause2)
		assert.Equal(t, values1, values2)
	})
}
