package money

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "integer dollars", input: "250", want: 25000},
		{name: "one decimal", input: "250.5", want: 25050},
		{name: "two decimals", input: "1234.56", want: 123456},
		{name: "zero", input: "0", want: 0},
		{name: "trailing dot", input: "250.", want: 25000},
		{name: "leading dot", input: ".5", want: 50},
		{name: "third decimal rounds up", input: "12.345", want: 1235},
		{name: "third decimal rounds down", input: "12.344", want: 1234},
		{name: "whitespace trimmed", input: " 42 ", want: 4200},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "explicit plus", input: "+5", wantErr: true},
		{name: "not a number", input: "pending", wantErr: true},
		{name: "bare dot", input: ".", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
		{name: "thousands separator", input: "1,000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCents(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCentsRoundTrip(t *testing.T) {
	// Any input with at most two decimal places converts exactly.
	for _, input := range []string{"0.01", "99.99", "100", "250.50", "10250.75"} {
		cents, err := ParseCents(input)
		require.NoError(t, err)

		major := ToMajorUnits(cents)
		back, err := ParseCents(strconv.FormatFloat(major, 'f', -1, 64))
		require.NoError(t, err)
		assert.Equal(t, cents, back, "round trip for %s", input)
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{25050, "$250.50"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-150, "-$1.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}

func TestToMajorUnits(t *testing.T) {
	assert.Equal(t, 250.5, ToMajorUnits(25050))
	assert.Equal(t, 0.0, ToMajorUnits(0))
}
