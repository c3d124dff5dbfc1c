package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("50000")
	require.NoError(t, err)
	assert.Equal(t, 50000.0, got)

	got, err = ParseAmount(1500.5)
	require.NoError(t, err)
	assert.Equal(t, 1500.5, got)

	_, err = ParseAmount("not-a-number")
	assert.Error(t, err)

	_, err = ParseAmount(true)
	assert.Error(t, err)

	for _, input := range []string{"NaN", "Inf", "+Inf", "-Inf", "Infinity"} {
		_, err = ParseAmount(input)
		assert.Error(t, err, "expected %q to be rejected", input)
	}

	_, err = ParseAmount(math.Inf(1))
	assert.Error(t, err)

	_, err = ParseAmount(math.NaN())
	assert.Error(t, err)
}

func TestParseOptionalInt(t *testing.T) {
	got, err := ParseOptionalInt("100")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 100, *got)

	got, err = ParseOptionalInt(float64(42))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)

	got, err = ParseOptionalInt(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalInt("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseOptionalInt("abc")
	assert.Error(t, err)
}
