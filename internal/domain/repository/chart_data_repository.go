package repository

import (
	"context"

	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
)

//go:generate mockgen -destination=../../mocks/mock_chart_data_repository.go -package=mocks . ChartDataRepository

// ChartDataRepository fetches pre-aggregated chart data scoped by a filter
type ChartDataRepository interface {
	// FetchChartData returns the labels/data pairs for one chart kind
	FetchChartData(ctx context.Context, kind enum.ChartKind, filter entity.FilterParams) (*entity.ChartData, error)
}
