package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/internal/application/service"
	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
	domainRepo "github.com/sangkips/salesreport-charts/internal/domain/repository"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/dto/response"
	"github.com/sangkips/salesreport-charts/pkg/apperror"
)

// ChartHandler serves rendered chart configs as JSON
type ChartHandler struct {
	renderer pageRenderer
	now      func() time.Time
}

// NewChartHandler creates a new chart handler
func NewChartHandler(repo domainRepo.ChartDataRepository, logger *zap.Logger) *ChartHandler {
	return &ChartHandler{
		renderer: pageRenderer{repo: repo, logger: logger},
		now:      time.Now,
	}
}

// ChartsResponse is the payload of the list endpoint
type ChartsResponse struct {
	Filter entity.FilterParams    `json:"filter"`
	Charts []service.RenderResult `json:"charts"`
}

// List renders every report chart for the filter in the query string
func (h *ChartHandler) List(c *gin.Context) {
	filter, ok := bindFilter(c, h.now())
	if !ok {
		return
	}

	_, results := h.renderer.renderAll(c.Request.Context(), filter)

	response.OK(c, "Charts rendered successfully", ChartsResponse{
		Filter: filter,
		Charts: results,
	})
}

// Get renders one chart kind. An upstream failure is reported as 502.
func (h *ChartHandler) Get(c *gin.Context) {
	kind, err := enum.ParseChartKind(c.Param("kind"))
	if err != nil {
		response.BadRequest(c, "Unknown chart type")
		return
	}

	filter, ok := bindFilter(c, h.now())
	if !ok {
		return
	}

	result := h.renderer.render(c.Request.Context(), kind, filter)
	if result.Failed() {
		_ = c.Error(result.Err)
		response.BadGateway(c, "Failed to load chart data", result)
		return
	}

	response.OK(c, "Chart rendered successfully", result)
}

// XLSXContentType is the media type of the exported workbook
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export renders every chart into an Excel workbook, one sheet per chart.
// Charts that fail to load are left out; if none load the response is 502.
func (h *ChartHandler) Export(c *gin.Context) {
	filter, ok := bindFilter(c, h.now())
	if !ok {
		return
	}

	book, results := h.renderer.renderWorkbook(c.Request.Context(), filter)
	defer book.Close()

	var failed []service.RenderResult
	for _, result := range results {
		if result.Failed() {
			_ = c.Error(result.Err)
			failed = append(failed, result)
		}
	}
	if len(failed) == len(results) {
		response.BadGateway(c, "Failed to load chart data", failed)
		return
	}

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		_ = c.Error(err)
		response.Error(c, apperror.NewAppError(http.StatusInternalServerError, "Failed to build workbook"))
		return
	}

	name := fmt.Sprintf("sales_report_%s_%s.xlsx", filter.StartDate, filter.EndDate)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, XLSXContentType, buf.Bytes())
}
