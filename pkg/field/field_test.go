package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestFieldStates(t *testing.T) {
	var zero Field[string]
	assert.True(t, zero.IsUnset())
	assert.False(t, zero.IsClear())
	assert.False(t, zero.IsSet())

	assert.True(t, Clear[string]().IsClear())
	assert.True(t, Of("x").IsSet())

	v, ok := Of("x").Value()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = Clear[string]().Value()
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	t.Run("clear nulls the target regardless of prior value", func(t *testing.T) {
		target := strPtr("prior")
		Clear[string]().Apply(&target)
		assert.Nil(t, target)

		target = nil
		Clear[string]().Apply(&target)
		assert.Nil(t, target)
	})

	t.Run("unset never changes the target", func(t *testing.T) {
		target := strPtr("prior")
		Unset[string]().Apply(&target)
		require.NotNil(t, target)
		assert.Equal(t, "prior", *target)

		var nilTarget *string
		Unset[string]().Apply(&nilTarget)
		assert.Nil(t, nilTarget)
	})

	t.Run("set assigns exactly the held value", func(t *testing.T) {
		target := strPtr("prior")
		Of("next").Apply(&target)
		require.NotNil(t, target)
		assert.Equal(t, "next", *target)

		// empty string is a legitimate value, not a clear
		Of("").Apply(&target)
		require.NotNil(t, target)
		assert.Equal(t, "", *target)
	})

	t.Run("applies to non-string scalars", func(t *testing.T) {
		var hold *bool
		Of(true).Apply(&hold)
		require.NotNil(t, hold)
		assert.True(t, *hold)

		Clear[bool]().Apply(&hold)
		assert.Nil(t, hold)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "<unset>", Unset[int]().String())
	assert.Equal(t, "<clear>", Clear[int]().String())
	assert.Equal(t, "5", Of(5).String())
}
