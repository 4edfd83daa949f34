package entity

import (
	"fmt"
	"net/url"
	"time"

	"github.com/sangkips/salesreport-charts/internal/domain/enum"
)

// DateLayout is the ISO calendar date format used by the report filters
const DateLayout = "2006-01-02"

// DefaultReportDays is how far back the report reaches when no start date is given
const DefaultReportDays = 30

// FilterParams scopes a report query. CashierID and Category are optional;
// an empty string means "all".
type FilterParams struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CashierID string `json:"cashier_id"`
	Category  string `json:"category"`
}

// DefaultFilterParams returns the last-30-days window ending on now's date
func DefaultFilterParams(now time.Time) FilterParams {
	return FilterParams{
		StartDate: now.AddDate(0, 0, -DefaultReportDays).Format(DateLayout),
		EndDate:   now.Format(DateLayout),
	}
}

// WithDefaults fills missing dates from DefaultFilterParams
func (f FilterParams) WithDefaults(now time.Time) FilterParams {
	def := DefaultFilterParams(now)
	if f.StartDate == "" {
		f.StartDate = def.StartDate
	}
	if f.EndDate == "" {
		f.EndDate = def.EndDate
	}
	return f
}

// Query builds the aggregate endpoint parameters for one chart kind.
// The result always holds exactly start_date, end_date, cashier_id,
// category and chart_type.
func (f FilterParams) Query(kind enum.ChartKind) url.Values {
	q := url.Values{}
	q.Set("start_date", f.StartDate)
	q.Set("end_date", f.EndDate)
	q.Set("cashier_id", f.CashierID)
	q.Set("category", f.Category)
	q.Set("chart_type", kind.String())
	return q
}

// Validate checks that set dates are ISO calendar dates in order
func (f FilterParams) Validate() error {
	for name, value := range map[string]string{"start_date": f.StartDate, "end_date": f.EndDate} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, value); err != nil {
			return fmt.Errorf("%s %q is not a YYYY-MM-DD date", name, value)
		}
	}
	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		return fmt.Errorf("end_date %s is before start_date %s", f.EndDate, f.StartDate)
	}
	return nil
}
