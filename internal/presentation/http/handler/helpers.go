package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/internal/application/service"
	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
	domainRepo "github.com/sangkips/salesreport-charts/internal/domain/repository"
	"github.com/sangkips/salesreport-charts/internal/infrastructure/surface"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/dto/request"
	"github.com/sangkips/salesreport-charts/internal/presentation/http/dto/response"
	"github.com/sangkips/salesreport-charts/pkg/apperror"
)

// bindFilter reads the filter query. It writes the error response and
// returns false when the query is invalid.
func bindFilter(c *gin.Context, now time.Time) (entity.FilterParams, bool) {
	var req request.ChartFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.FromBindingError(err))
		return entity.FilterParams{}, false
	}

	filter := req.ToFilterParams(now)
	if filter.StartDate > filter.EndDate {
		response.ValidationError(c, []apperror.FieldError{
			{Field: "end_date", Message: "must not be before start_date"},
		})
		return entity.FilterParams{}, false
	}
	return filter, true
}

// pageRenderer draws report charts onto a fresh dashboard page per request
type pageRenderer struct {
	repo   domainRepo.ChartDataRepository
	logger *zap.Logger
}

func newPage() *surface.PageSurface {
	return surface.NewPageSurface(
		service.DailySalesMountID,
		service.CategoryMountID,
		service.ProductsMountID,
	)
}

func (p pageRenderer) renderAll(ctx context.Context, filter entity.FilterParams) (*surface.PageSurface, []service.RenderResult) {
	page := newPage()
	results := service.NewChartRenderer(p.repo, page, service.WithLogger(p.logger)).RenderAll(ctx, filter)
	return page, results
}

func (p pageRenderer) renderWorkbook(ctx context.Context, filter entity.FilterParams) (*surface.WorkbookSurface, []service.RenderResult) {
	book := surface.NewWorkbookSurface(
		service.DailySalesMountID,
		service.CategoryMountID,
		service.ProductsMountID,
	)
	results := service.NewChartRenderer(p.repo, book, service.WithLogger(p.logger)).RenderAll(ctx, filter)
	return book, results
}

func (p pageRenderer) render(ctx context.Context, kind enum.ChartKind, filter entity.FilterParams) service.RenderResult {
	return service.NewChartRenderer(p.repo, newPage(), service.WithLogger(p.logger)).Render(ctx, kind, filter)
}
