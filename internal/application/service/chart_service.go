package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
	"github.com/sangkips/salesreport-charts/internal/domain/repository"
	"github.com/sangkips/salesreport-charts/pkg/chartjs"
)

// RenderResult is the outcome of rendering one chart
type RenderResult struct {
	Kind    enum.ChartKind    `json:"kind"`
	MountID string            `json:"mount_id"`
	Status  enum.RenderStatus `json:"status"`
	Config  *chartjs.Config   `json:"config,omitempty"`
	Err     error             `json:"-"`
	Error   string            `json:"error,omitempty"`
}

// Failed reports whether the render failed
func (r RenderResult) Failed() bool {
	return r.Status == enum.RenderStatusFailed
}

// ChartRenderer fetches aggregated report data and draws the sales report
// charts onto a surface
type ChartRenderer struct {
	repo      repository.ChartDataRepository
	surface   Surface
	logger    *zap.Logger
	onFailure func(RenderResult)
}

// ChartRendererOption configures a ChartRenderer
type ChartRendererOption func(*ChartRenderer)

// WithLogger sets the logger used to report render failures
func WithLogger(logger *zap.Logger) ChartRendererOption {
	return func(r *ChartRenderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFailureHandler registers a callback invoked for every failed render
func WithFailureHandler(fn func(RenderResult)) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.onFailure = fn
	}
}

// NewChartRenderer creates a new chart renderer
func NewChartRenderer(repo repository.ChartDataRepository, surface Surface, opts ...ChartRendererOption) *ChartRenderer {
	r := &ChartRenderer{
		repo:    repo,
		surface: surface,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderDailySalesChart draws the daily sales bar chart
func (r *ChartRenderer) RenderDailySalesChart(ctx context.Context, filter entity.FilterParams) RenderResult {
	return r.Render(ctx, enum.ChartKindDaily, filter)
}

// RenderCategoryChart draws the sales-by-category doughnut chart
func (r *ChartRenderer) RenderCategoryChart(ctx context.Context, filter entity.FilterParams) RenderResult {
	return r.Render(ctx, enum.ChartKindCategory, filter)
}

// RenderProductsChart draws the top products horizontal bar chart
func (r *ChartRenderer) RenderProductsChart(ctx context.Context, filter entity.FilterParams) RenderResult {
	return r.Render(ctx, enum.ChartKindProducts, filter)
}

// Render runs the fetch-then-draw pipeline for one chart kind. A missing
// mount point skips the chart without fetching. Failures are logged and
// carried in the result; Render never panics on bad upstream data.
func (r *ChartRenderer) Render(ctx context.Context, kind enum.ChartKind, filter entity.FilterParams) RenderResult {
	desc, ok := chartDescriptors[kind]
	if !ok {
		return r.fail(RenderResult{Kind: kind}, "Error loading chart", fmt.Errorf("unknown chart kind %d", int(kind)))
	}

	result := RenderResult{Kind: kind, MountID: desc.mountID, Status: enum.RenderStatusSkipped}

	canvas, ok := r.surface.Mount(desc.mountID)
	if !ok {
		return result
	}

	data, err := r.repo.FetchChartData(ctx, kind, filter)
	if err != nil {
		return r.fail(result, desc.errMessage, err)
	}

	cfg := buildConfig(desc, data)
	if err := canvas.Draw(cfg); err != nil {
		return r.fail(result, desc.errMessage, fmt.Errorf("draw %s: %w", desc.mountID, err))
	}

	result.Status = enum.RenderStatusRendered
	result.Config = cfg
	return result
}

// RenderAll renders every chart kind concurrently, as a page load does.
// Results are returned in enum.ChartKinds order.
func (r *ChartRenderer) RenderAll(ctx context.Context, filter entity.FilterParams) []RenderResult {
	results := make([]RenderResult, len(enum.ChartKinds))

	var wg sync.WaitGroup
	for i, kind := range enum.ChartKinds {
		wg.Add(1)
		go func(i int, kind enum.ChartKind) {
			defer wg.Done()
			results[i] = r.Render(ctx, kind, filter)
		}(i, kind)
	}
	wg.Wait()

	return results
}

func (r *ChartRenderer) fail(result RenderResult, msg string, err error) RenderResult {
	result.Status = enum.RenderStatusFailed
	result.Err = err
	result.Error = err.Error()

	r.logger.Error(msg,
		zap.String("kind", result.Kind.String()),
		zap.String("mount_id", result.MountID),
		zap.Error(err),
	)

	if r.onFailure != nil {
		r.onFailure(result)
	}
	return result
}
