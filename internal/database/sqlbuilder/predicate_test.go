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

func intPtr(v int) *int { return &v }

func TestTextMatch(t *testing.T) {
	t.Run("wraps term in wildcards as a bind value", func(t *testing.T) {
		fragment, value, err := TextMatch("name", "net", 0)
		require.NoError(t, err)
		assert.Equal(t, "name ILIKE $1", fragment)
		assert.Equal(t, "%net%", value)
	})

	t.Run("placeholder follows the cursor", func(t *testing.T) {
		fragment, value, err := TextMatch("title", "engineer", 3)
		require.NoError(t, err)
		assert.Equal(t, "title ILIKE $4", fragment)
		assert.Equal(t, "%engineer%", value)
	})

	t.Run("hostile term stays out of the SQL text", func(t *testing.T) {
		fragment, value, err := TextMatch("name", "'; DROP TABLE companies; --", 0)
		require.NoError(t, err)
		assert.Equal(t, "name ILIKE $1", fragment)
		assert.Equal(t, "%'; DROP TABLE companies; --%", value)
	})

	t.Run("empty term fails", func(t *testing.T) {
		_, _, err := TextMatch("name", "", 0)
		assert.ErrorIs(t, err, ErrMissingFilter)
	})
}

func TestNumericRange(t *testing.T) {
	t.Run("min only", func(t *testing.T) {
		fragments, values, err := NumericRange("num_employees", intPtr(2), nil, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"num_employees >= $1"}, fragments)
		assert.Equal(t, []interface{}{2}, values)
	})

	t.Run("max only", func(t *testing.T) {
		fragments, values, err := NumericRange("num_employees", nil, intPtr(15), 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"num_employees <= $1"}, fragments)
		assert.Equal(t, []interface{}{15}, values)
	})

	t.Run("both bounds in fixed order", func(t *testing.T) {
		fragments, values, err := NumericRange("salary", intPtr(50000), intPtr(90000), 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"salary >= $1", "salary <= $2"}, fragments)
		assert.Equal(t, []interface{}{50000, 90000}, values)
	})

	t.Run("cursor offsets both placeholders", func(t *testing.T) {
		fragments, values, err := NumericRange("num_employees", intPtr(3), intPtr(15), 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"num_employees >= $2", "num_employees <= $3"}, fragments)
		assert.Equal(t, []interface{}{3, 15}, values)
	})

	t.Run("no bounds fails", func(t *testing.T) {
		_, _, err := NumericRange("salary", nil, nil, 0)
		assert.ErrorIs(t, err, ErrMissingFilter)
	})

	t.Run("inverted range fails", func(t *testing.T) {
		_, _, err := NumericRange("num_employees", intPtr(10), intPtr(1), 0)
		assert.ErrorIs(t, err, ErrInvertedRange)
	})

	t.Run("equal bounds are allowed", func(t *testing.T) {
		fragments, values, err := NumericRange("num_employees", intPtr(5), intPtr(5), 0)
		require.NoError(t, err)
		assert.Len(t, fragments, 2)
		assert.Equal(t, []interface{}{5, 5}, values)
	})
}

func TestPositiveFlag(t *testing.T) {
	t.Run("true means strictly positive", func(t *testing.T) {
		fragment, value := PositiveFlag("equity", true, 0)
		assert.Equal(t, "equity > $1", fragment)
		assert.Equal(t, 0, value)
	})

	t.Run("false means exactly zero", func(t *testing.T) {
		fragment, value := PositiveFlag("equity", false, 0)
		assert.Equal(t, "equity = $1", fragment)
		assert.Equal(t, 0, value)
	})

	t.Run("placeholder follows the cursor", func(t *testing.T) {
		fragment, _ := PositiveFlag("equity", true, 2)
		assert.Equal(t, "equity > $3", fragment)
	})
}

// Composition is exercised end to end by the per-resource filter compilers
// (companies/repository and jobs/repository); the checks here pin down the
// rule-level contract they rely on: the cursor advances by exactly the number
// of values appended, never more.
func TestRuleComposition(t *testing.T) {
	cursor := 0
	var fragments []string
	var values []interface{}

	fragment, value, err := TextMatch("name", "net", cursor)
	require.NoError(t, err)
	fragments = append(fragments, fragment)
	values = append(values, value)
	cursor += 1

	rangeFragments, rangeValues, err := NumericRange("num_employees", intPtr(3), intPtr(15), cursor)
	require.NoError(t, err)
	fragments = append(fragments, rangeFragments...)
	values = append(values, rangeValues...)
	cursor += len(rangeValues)

	flagFragment, flagValue := PositiveFlag("equity", true, cursor)
	fragments = append(fragments, flagFragment)
	values = append(values, flagValue)
	cursor++

	assert.Equal(t, []string{
		"name ILIKE $1",
		"num_employees >= $2",
		"num_employees <= $3",
		"equity > $4",
	}, fragments)
	assert.Equal(t, []interface{}{"%net%", 3, 15, 0}, values)
	assert.Equal(t, 4, cursor)
}
