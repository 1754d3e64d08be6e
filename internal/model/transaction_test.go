package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("1,234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", a.String())

	a, err = ParseAmount("5000.00")
	require.NoError(t, err)
	assert.Equal(t, "5000.00", a.String())
}

func TestParseAmount_Blank(t *testing.T) {
	a, err := ParseAmount("")
	require.NoError(t, err)
	assert.True(t, a.IsZero())
	assert.Equal(t, "", a.String())
}

func TestParseAmount_Invalid(t *testing.T) {
	_, err := ParseAmount("not-a-number")
	assert.Error(t, err)
}

func TestAmount_ZeroEqualsBlank(t *testing.T) {
	blank := Amount{}
	zero := NewAmount(decimal.Zero)

	assert.True(t, blank.Equal(zero))
	assert.Equal(t, "", zero.String())
}

func TestAmount_Equal(t *testing.T) {
	a, err := ParseAmount("100.00")
	require.NoError(t, err)
	b, err := ParseAmount("100.00")
	require.NoError(t, err)
	c, err := ParseAmount("200.00")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Amount{}))
}

func TestAmount_UnmarshalCSV_CoercesGarbageToBlank(t *testing.T) {
	var a Amount
	require.NoError(t, a.UnmarshalCSV("garbage"))
	assert.True(t, a.IsZero())

	require.NoError(t, a.UnmarshalCSV("42.50"))
	assert.Equal(t, "42.50", a.String())
}
