package handler

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/internal/application/service"
	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
	domainRepo "github.com/sangkips/salesreport-charts/internal/domain/repository"
	"github.com/sangkips/salesreport-charts/pkg/chartjs"
	"github.com/sangkips/salesreport-charts/pkg/format"
)

// SalesReportsTemplate is the template name of the dashboard page
const SalesReportsTemplate = "sales_reports.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the dashboard templates
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"formatDate": format.FormatDate,
		"chartTitle": func(mountID string) string { return mountTitles[mountID] },
	}).ParseFS(templateFS, "templates/*.html"))
}

// DashboardHandler serves the sales reports page
type DashboardHandler struct {
	renderer pageRenderer
	now      func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(repo domainRepo.ChartDataRepository, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		renderer: pageRenderer{repo: repo, logger: logger},
		now:      time.Now,
	}
}

// dashboardPage is the template data of the sales reports page
type dashboardPage struct {
	Locale     string
	Filter     entity.FilterParams
	MountIDs   []string
	Configs    map[string]*chartjs.Config
	Failures   []string
	TotalSales string
	TotalUnits string
}

// SalesReports renders the dashboard with the three report charts
func (h *DashboardHandler) SalesReports(c *gin.Context) {
	filter, ok := bindFilter(c, h.now())
	if !ok {
		return
	}

	page, results := h.renderer.renderAll(c.Request.Context(), filter)

	data := dashboardPage{
		Locale:   format.Locale,
		Filter:   filter,
		MountIDs: page.MountIDs(),
		Configs:  page.Configs(),
	}
	for _, result := range results {
		if result.Failed() {
			data.Failures = append(data.Failures, result.MountID)
			continue
		}
		if result.Config == nil || len(result.Config.Data.Datasets) == 0 {
			continue
		}
		total := sum(result.Config.Data.Datasets[0].Data)
		switch result.Kind {
		case enum.ChartKindDaily:
			data.TotalSales = format.FormatCurrency(total)
		case enum.ChartKindProducts:
			data.TotalUnits = format.FormatUnits(total)
		}
	}

	c.HTML(http.StatusOK, SalesReportsTemplate, data)
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// mountTitles labels the chart cards on the page
var mountTitles = map[string]string{
	service.DailySalesMountID: "Daily Sales",
	service.CategoryMountID:   "Sales by Category",
	service.ProductsMountID:   "Top Products",
}
