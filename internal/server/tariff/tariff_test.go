package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name      string
		cold, hot float64
		want      string
	}{
		{name: "example bill", cold: 10, hot: 5, want: "47.50"},
		{name: "zero", cold: 0, hot: 0, want: "0.00"},
		{name: "cold only", cold: 4, hot: 0, want: "10.00"},
		{name: "fractional volumes", cold: 1.25, hot: 0.3, want: "4.48"},
		{name: "hot only", cold: 0, hot: 2.2, want: "9.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(Amount(tt.cold, tt.hot)))
		})
	}
}

func TestAmount_IsExactDecimal(t *testing.T) {
	// 0.1 m³ of cold water must not drift like binary floats do.
	got := Amount(0.1, 0.1)
	assert.True(t, got.Equal(decimal.RequireFromString("0.7")), got.String())
}

func TestAmount_RoundsToCents(t *testing.T) {
	got := Amount(1.002, 0) // 2.505
	assert.Equal(t, "2.51", got.String())
	assert.Equal(t, "0", Amount(0.001, 0).String())
	assert.Equal(t, "-0.01", Cents(decimal.RequireFromString("-0.005")).String())
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "12.35", FormatFloat(12.345))
	assert.Equal(t, "3.00", FormatFloat(3))
}
