package format_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/sangkips/salesreport-charts/pkg/format"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "float with one decimal", value: 1234.5, want: "R 1,234.50"},
		{name: "zero string", value: "0", want: "R 0.00"},
		{name: "numeric string matches number", value: "1234.5", want: "R 1,234.50"},
		{name: "int", value: 1500000, want: "R 1,500,000.00"},
		{name: "rounds half away from zero", value: 2.345, want: "R 2.35"},
		{name: "negative", value: -9876.543, want: "R -9,876.54"},
		{name: "negative rounding to zero", value: -0.001, want: "R -0.00"},
		{name: "negative zero string", value: "-0", want: "R -0.00"},
		{name: "numeric prefix", value: "12.5abc", want: "R 12.50"},
		{name: "leading whitespace", value: "  42", want: "R 42.00"},
		{name: "json number", value: json.Number("99.9"), want: "R 99.90"},
		{name: "decimal", value: decimal.RequireFromString("1000.1"), want: "R 1,000.10"},
		{name: "not a number", value: "abc", want: "R NaN"},
		{name: "nil", value: nil, want: "R NaN"},
		{name: "bool", value: true, want: "R NaN"},
		{name: "infinity", value: math.Inf(1), want: "R ∞"},
		{name: "infinity string", value: "-Infinity", want: "R -∞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.FormatCurrency(tt.value))
		})
	}
}

func TestFormatCurrencyTick(t *testing.T) {
	assert.Equal(t, "R 0", format.FormatCurrencyTick(0))
	assert.Equal(t, "R 1,235", format.FormatCurrencyTick(1234.56))
	assert.Equal(t, "R 20,000", format.FormatCurrencyTick(20000))
	assert.Equal(t, "R -0", format.FormatCurrencyTick(-0.4))
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "5 units", format.FormatUnits(5))
	assert.Equal(t, "2.5 units", format.FormatUnits(2.5))
	assert.Equal(t, "0 units", format.FormatUnits(0))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "iso date", value: "2024-03-05", want: "Mar 5, 2024"},
		{name: "rfc3339", value: "2024-12-31T23:59:59Z", want: "Dec 31, 2024"},
		{name: "local timestamp", value: "2024-01-15T08:30:00", want: "Jan 15, 2024"},
		{name: "space separated timestamp", value: "2023-07-04 10:00:00", want: "Jul 4, 2023"},
		{name: "garbage", value: "not a date", want: format.InvalidDate},
		{name: "empty", value: "", want: format.InvalidDate},
		{name: "impossible day", value: "2024-02-30", want: format.InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.FormatDate(tt.value))
		})
	}
}

func TestFormatDate_ContainsDateParts(t *testing.T) {
	got := format.FormatDate("2024-03-05")
	assert.Contains(t, got, "Mar")
	assert.Contains(t, got, "5")
	assert.Contains(t, got, "2024")
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 12.0, format.ParseNumber("12"))
	assert.Equal(t, 0.5, format.ParseNumber(".5"))
	assert.Equal(t, 1500.0, format.ParseNumber("1.5e3xyz"))
	assert.Equal(t, float64(7), format.ParseNumber(int64(7)))
	assert.True(t, math.IsNaN(format.ParseNumber("")))
	assert.True(t, math.IsNaN(format.ParseNumber(struct{}{})))
}
