// Package format renders report values for the en-ZA sales dashboard.
package format

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale is the locale the dashboard formats for
const Locale = "en-ZA"

// CurrencySymbol prefixes every currency amount, followed by a space
const CurrencySymbol = "R"

// InvalidDate is returned by FormatDate for unparseable input
const InvalidDate = "Invalid Date"

const dateDisplayLayout = "Jan 2, 2006"

// Grouping uses "," thousands and "." decimals for the dashboard's en-ZA
// output, which is the English pattern in CLDR terms.
var printer = message.NewPrinter(language.English)

var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// FormatCurrency formats a number or numeric string as Rands with two
// decimals, e.g. "R 1,234.50". Input that does not start with a number
// gives "R NaN".
func FormatCurrency(value interface{}) string {
	return CurrencySymbol + " " + grouped(ParseNumber(value), 2)
}

// FormatCurrencyTick formats an axis tick as whole Rands, e.g. "R 1,235"
func FormatCurrencyTick(v float64) string {
	return CurrencySymbol + " " + grouped(v, 0)
}

// FormatUnits formats a quantity axis tick, e.g. "12 units"
func FormatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " units"
}

// FormatDate formats an ISO date or timestamp as "Mar 5, 2024".
// The calendar date is taken as written, with no time zone shift.
func FormatDate(value string) string {
	s := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateDisplayLayout)
		}
	}
	return InvalidDate
}

// ParseNumber converts number-like input to float64. Strings are read
// up to the longest numeric prefix; anything else yields NaN.
func ParseNumber(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case decimal.Decimal:
		return v.InexactFloat64()
	case json.Number:
		return parseFloatPrefix(string(v))
	case string:
		return parseFloatPrefix(v)
	case fmt.Stringer:
		return parseFloatPrefix(v.String())
	}
	return math.NaN()
}

func parseFloatPrefix(s string) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// out of range input comes back as ±Inf, matching parseFloat
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

func grouped(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	rounded := decimal.NewFromFloat(v).Round(int32(decimals))
	s := printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(decimals)))
	// negative amounts that round to zero keep their sign, as in "-0.00"
	if math.Signbit(v) && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}
