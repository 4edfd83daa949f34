package service

import "github.com/sangkips/salesreport-charts/pkg/chartjs"

//go:generate mockgen -destination=../../mocks/mock_surface.go -package=mocks . Surface,Canvas

// Surface is the host a chart is drawn onto. Mount returns false when the
// page has no element with the given id.
type Surface interface {
	Mount(id string) (Canvas, bool)
}

// Canvas draws a single chart configuration
type Canvas interface {
	Draw(cfg *chartjs.Config) error
}
