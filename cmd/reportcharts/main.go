package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/internal/application/service"
	"github.com/sangkips/salesreport-charts/internal/config"
	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
	domainRepo "github.com/sangkips/salesreport-charts/internal/domain/repository"
	"github.com/sangkips/salesreport-charts/internal/infrastructure/repository"
	"github.com/sangkips/salesreport-charts/internal/infrastructure/surface"
	"github.com/sangkips/salesreport-charts/pkg/logger"
)

type options struct {
	filter entity.FilterParams
	outDir string
	format string
	width  int
	height int
	only   string
}

func main() {
	if err := logger.Init(os.Getenv("APP_ENV")); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Load()

	var opts options
	flag.StringVar(&opts.filter.StartDate, "start", "", "Start date (YYYY-MM-DD), defaults to 30 days ago")
	flag.StringVar(&opts.filter.EndDate, "end", "", "End date (YYYY-MM-DD), defaults to today")
	flag.StringVar(&opts.filter.CashierID, "cashier", "", "Optional cashier id")
	flag.StringVar(&opts.filter.Category, "category", "", "Optional product category")
	flag.StringVar(&opts.outDir, "out", cfg.Render.OutputDir, "Output directory")
	flag.StringVar(&opts.format, "format", cfg.Render.Format, "Output format: png, svg or xlsx")
	flag.IntVar(&opts.width, "width", cfg.Render.Width, "Image width in pixels")
	flag.IntVar(&opts.height, "height", cfg.Render.Height, "Image height in pixels")
	flag.StringVar(&opts.only, "only", "", "Comma separated chart types to render (daily,category,products)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repo := repository.NewChartDataRepository(cfg.Upstream.NewClient(logger.Log), cfg.Upstream.DataPath)
	if err := run(ctx, repo, opts, os.Stdout); err != nil {
		logger.Error("Report rendering failed", zap.Error(err))
		os.Exit(1)
	}
}

// run renders the selected charts to image files and prints one line per chart
func run(ctx context.Context, repo domainRepo.ChartDataRepository, opts options, out io.Writer) error {
	filter := opts.filter.WithDefaults(time.Now())
	if err := filter.Validate(); err != nil {
		return err
	}

	kinds, err := parseKinds(opts.only)
	if err != nil {
		return err
	}

	mounts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		mounts = append(mounts, service.MountID(kind))
	}

	target, err := newOutput(opts, mounts)
	if err != nil {
		return err
	}
	defer target.Close()

	renderer := service.NewChartRenderer(repo, target, service.WithLogger(logger.Log))

	failed := 0
	for _, result := range renderer.RenderAll(ctx, filter) {
		switch result.Status {
		case enum.RenderStatusRendered:
			fmt.Fprintf(out, "%-9s %s\n", result.Kind, target.Location(result.MountID))
		case enum.RenderStatusFailed:
			failed++
			fmt.Fprintf(out, "%-9s failed: %s\n", result.Kind, result.Error)
		}
	}

	if err := target.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d charts failed", failed, len(kinds))
	}
	return nil
}

func parseKinds(only string) ([]enum.ChartKind, error) {
	if strings.TrimSpace(only) == "" {
		return enum.ChartKinds, nil
	}

	var kinds []enum.ChartKind
	seen := map[enum.ChartKind]bool{}
	for _, name := range strings.Split(only, ",") {
		kind, err := enum.ParseChartKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// WorkbookName is the file written by the xlsx output
const WorkbookName = "sales_report.xlsx"

// output is a chart surface that knows where each chart ends up
type output interface {
	service.Surface
	Location(mountID string) string
	Flush() error
	Close() error
}

func newOutput(opts options, mounts []string) (output, error) {
	if opts.format == surface.FormatXLSX {
		return &workbookOutput{
			WorkbookSurface: surface.NewWorkbookSurface(mounts...),
			path:            filepath.Join(opts.outDir, WorkbookName),
		}, nil
	}

	images, err := surface.NewImageSurface(opts.outDir, opts.format,
		surface.WithSize(opts.width, opts.height),
		surface.WithMounts(mounts...),
	)
	if err != nil {
		return nil, err
	}
	return imageOutput{images}, nil
}

type imageOutput struct {
	*surface.ImageSurface
}

func (o imageOutput) Location(mountID string) string { return o.Path(mountID) }
func (o imageOutput) Flush() error                   { return nil }
func (o imageOutput) Close() error                   { return nil }

type workbookOutput struct {
	*surface.WorkbookSurface
	path string
}

func (o *workbookOutput) Location(mountID string) string {
	return o.path + " [" + mountID + "]"
}

func (o *workbookOutput) Flush() error {
	if len(o.Sheets()) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(o.path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(o.path)
	if err != nil {
		return err
	}
	if err := o.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
