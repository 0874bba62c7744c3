package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"comma decimal with thousands", "R$ 1.500,50", 1500.50, true},
		{"comma decimal only", "1500,50", 1500.50, true},
		{"plain dot decimal", "1500.50", 1500.50, true},
		{"multiple dots treated as thousands", "1.234.567.89", 1234567.89, true},
		{"integer", "800", 800, true},
		{"negative", "-42,10", -42.10, true},
		{"currency marker and spaces", "  R$ 12.345,67 ", 12345.67, true},
		{"empty", "", 0, false},
		{"no digits", "R$ --", 0, false},
		{"letters only", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseMoney(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFormatBRL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "R$ 1.500,50", FormatBRL(1500.5))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 800,00", FormatBRL(800))
}

func TestParseMoney_FormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{1500.5, 0.01, 800, 12345.67, 999999.99} {
		got, ok := ParseMoney(FormatBRL(v))
		require.True(t, ok)
		assert.InDelta(t, v, got, 1e-9)
	}
}
