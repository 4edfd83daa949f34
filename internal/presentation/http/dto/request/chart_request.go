package request

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/pkg/apperror"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(apperror.FormFieldName)
	}
}

// ChartFilterRequest is the filter state read from the dashboard query string
type ChartFilterRequest struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	CashierID string `form:"cashier_id" binding:"omitempty,numeric"`
	Category  string `form:"category" binding:"omitempty,max=100"`
}

// ToFilterParams converts the request to filter params, filling missing
// dates with the default report window ending on now.
func (r ChartFilterRequest) ToFilterParams(now time.Time) entity.FilterParams {
	return entity.FilterParams{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		CashierID: r.CashierID,
		Category:  r.Category,
	}.WithDefaults(now)
}
