// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"testing"

	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/hirewire/hirewire/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestCompileJobFilter(t *testing.T) {
	t.Run("nil filter compiles to no clause", func(t *testing.T) {
		clause, values, err := compileJobFilter(nil)
		require.NoError(t, err)
		assert.Equal(t, "", clause)
		assert.Empty(t, values)
	})

	t.Run("empty filter compiles to no clause", func(t *testing.T) {
		clause, values, err := compileJobFilter(&models.JobFilter{})
		require.NoError(t, err)
		assert.Equal(t, "", clause)
		assert.Empty(t, values)
	})

	t.Run("title only", func(t *testing.T) {
		clause, values, err := compileJobFilter(&models.JobFilter{Title: strPtr("engineer")})
		require.NoError(t, err)
		assert.Equal(t, "title ILIKE $1", clause)
		assert.Equal(t, []interface{}{"%engineer%"}, values)
	})

	t.Run("min salary only", func(t *testing.T) {
		clause, values, err := compileJobFilter(&models.JobFilter{MinSalary: intPtr(90000)})
		require.NoError(t, err)
		assert.Equal(t, "salary >= $1", clause)
		assert.Equal(t, []interface{}{90000}, values)
	})

	t.Run("hasEquity true demands strictly positive equity", func(t *testing.T) {
		clause, values, err := compileJobFilter(&models.JobFilter{HasEquity: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, "equity > $1", clause)
		assert.Equal(t, []interface{}{0}, values)
	})

	t.Run("hasEquity false demands zero equity", func(t *testing.T) {
		clause, values, err := compileJobFilter(&models.JobFilter{HasEquity: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, "equity = $1", clause)
		assert.Equal(t, []interface{}{0}, values)
	})

	t.Run("all dimensions compose with aligned placeholders", func(t *testing.T) {
		clause, values, err := compileJobFilter(&models.JobFilter{
			Title:     strPtr("engineer"),
			MinSalary: intPtr(90000),
			HasEquity: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "title ILIKE $1 AND salary >= $2 AND equity > $3", clause)
		assert.Equal(t, []interface{}{"%engineer%", 90000, 0}, values)
	})

	t.Run("empty title term fails", func(t *testing.T) {
		_, _, err := compileJobFilter(&models.JobFilter{Title: strPtr("")})
		assert.ErrorIs(t, err, sqlbuilder.ErrMissingFilter)
	})
}
