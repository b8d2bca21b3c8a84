// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"testing"

	"github.com/hirewire/hirewire/companies/models"
	"github.com/hirewire/hirewire/internal/database/sqlbuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestCompileCompanyFilter(t *testing.T) {
	t.Run("nil filter compiles to no clause", func(t *testing.T) {
		clause, values, err := compileCompanyFilter(nil)
		require.NoError(t, err)
		assert.Equal(t, "", clause)
		assert.Empty(t, values)
	})

	t.Run("empty filter compiles to no clause", func(t *testing.T) {
		clause, values, err := compileCompanyFilter(&models.CompanyFilter{})
		require.NoError(t, err)
		assert.Equal(t, "", clause)
		assert.Empty(t, values)
	})

	t.Run("name only", func(t *testing.T) {
		clause, values, err := compileCompanyFilter(&models.CompanyFilter{Name: strPtr("net")})
		require.NoError(t, err)
		assert.Equal(t, "name ILIKE $1", clause)
		assert.Equal(t, []interface{}{"%net%"}, values)
	})

	t.Run("min employees only", func(t *testing.T) {
		clause, values, err := compileCompanyFilter(&models.CompanyFilter{MinEmployees: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, "num_employees >= $1", clause)
		assert.Equal(t, []interface{}{2}, values)
	})

	t.Run("max employees only", func(t *testing.T) {
		clause, values, err := compileCompanyFilter(&models.CompanyFilter{MaxEmployees: intPtr(50)})
		require.NoError(t, err)
		assert.Equal(t, "num_employees <= $1", clause)
		assert.Equal(t, []interface{}{50}, values)
	})

	t.Run("all dimensions compose with aligned placeholders", func(t *testing.T) {
		clause, values, err := compileCompanyFilter(&models.CompanyFilter{
			Name:         strPtr("net"),
			MinEmployees: intPtr(3),
			MaxEmployees: intPtr(15),
		})
		require.NoError(t, err)
		assert.Equal(t, "name ILIKE $1 AND num_employees >= $2 AND num_employees <= $3", clause)
		assert.Equal(t, []interface{}{"%net%", 3, 15}, values)
	})

	t.Run("empty name term fails", func(t *testing.T) {
		_, _, err := compileCompanyFilter(&models.CompanyFilter{Name: strPtr("")})
		assert.ErrorIs(t, err, sqlbuilder.ErrMissingFilter)
	})

	t.Run("inverted range fails even with other dimensions", func(t *testing.T) {
		_, _, err := compileCompanyFilter(&models.CompanyFilter{
			Name:         strPtr("net"),
			MinEmployees: intPtr(10),
			MaxEmployees: intPtr(1),
		})
		assert.ErrorIs(t, err, sqlbuilder.ErrInvertedRange)
	})

	t.Run("compilation is idempotent", func(t *testing.T) {
		filter := &models.CompanyFilter{Name: strPtr("acme"), MinEmployees: intPtr(1)}

		clause1, values1, err := compileCompanyFilter(filter)
		require.NoError(t, err)
		clause2, values2, err := compileCompanyFilter(filter)
		require.NoError(t, err)

		assert.Equal(t, clause1, clause2)
		assert.Equal(t, values1, values2)
	})
}
