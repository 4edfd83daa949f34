package surface

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sangkips/salesreport-charts/internal/application/service"
	"github.com/sangkips/salesreport-charts/pkg/chartjs"
)

// Image formats supported by ImageSurface
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

// ImageSurface renders chart configs to image files, one per canvas id,
// named <dir>/<id>.<format>.
type ImageSurface struct {
	dir    string
	format string
	width  int
	height int

	// mounts limits the canvases present on the surface; nil means all
	mounts map[string]bool

	mu      sync.Mutex
	written map[string]string
}

// ImageOption configures an ImageSurface
type ImageOption func(*ImageSurface)

// WithSize sets the image size in pixels
func WithSize(width, height int) ImageOption {
	return func(s *ImageSurface) {
		if width > 0 {
			s.width = width
		}
		if height > 0 {
			s.height = height
		}
	}
}

// WithMounts restricts the surface to the given canvas ids
func WithMounts(ids ...string) ImageOption {
	return func(s *ImageSurface) {
		s.mounts = make(map[string]bool, len(ids))
		for _, id := range ids {
			s.mounts[id] = true
		}
	}
}

// NewImageSurface creates an image surface writing to dir
func NewImageSurface(dir, format string, opts ...ImageOption) (*ImageSurface, error) {
	if format != FormatPNG && format != FormatSVG {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	s := &ImageSurface{
		dir:     dir,
		format:  format,
		width:   defaultWidth,
		height:  defaultHeight,
		written: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Mount implements service.Surface
func (s *ImageSurface) Mount(id string) (service.Canvas, bool) {
	if s.mounts != nil && !s.mounts[id] {
		return nil, false
	}
	return &imageCanvas{surface: s, id: id}, true
}

// Path returns the file a canvas is written to
func (s *ImageSurface) Path(id string) string {
	return filepath.Join(s.dir, id+"."+s.format)
}

// Written returns the files written so far keyed by canvas id
func (s *ImageSurface) Written() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.written))
	for id, path := range s.written {
		out[id] = path
	}
	return out
}

func (s *ImageSurface) provider() chart.RendererProvider {
	if s.format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

type imageCanvas struct {
	surface *ImageSurface
	id      string
}

func (c *imageCanvas) Draw(cfg *chartjs.Config) error {
	if cfg == nil || len(cfg.Data.Datasets) == 0 {
		return errors.New("chart config has no dataset")
	}

	s := c.surface
	title := chartTitle(cfg, c.id)

	var buf bytes.Buffer
	var err error
	switch {
	case !hasPositive(cfg.Data.Datasets[0].Data):
		err = renderPlaceholder(s.provider(), s.width, s.height, title+": no data", &buf)
	case cfg.Type == chartjs.DoughnutChartType:
		err = donutChart(cfg, title, s.width, s.height).Render(s.provider(), &buf)
	case cfg.IsHorizontal():
		var hbc chart.StackedBarChart
		if hbc, err = horizontalBarChart(cfg, title, s.width, s.height); err == nil {
			err = hbc.Render(s.provider(), &buf)
		}
	case cfg.Type == chartjs.BarChartType:
		err = barChart(cfg, title, s.width, s.height).Render(s.provider(), &buf)
	default:
		err = fmt.Errorf("unsupported chart type %q", cfg.Type)
	}
	if err != nil {
		return errors.Wrapf(err, "render %s", c.id)
	}

	path := s.Path(c.id)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	s.mu.Lock()
	s.written[c.id] = path
	s.mu.Unlock()
	return nil
}

func chartTitle(cfg *chartjs.Config, fallback string) string {
	if label := cfg.Data.Datasets[0].Label; label != "" {
		return label
	}
	return fallback
}

// hasPositive reports whether a bar or slice would have any extent
func hasPositive(values []float64) bool {
	for _, v := range values {
		if v > 0 && !math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func fillStyle(hex string) chart.Style {
	c := drawing.ColorFromHex(hex)
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

func label(cfg *chartjs.Config, i int) string {
	if i < len(cfg.Data.Labels) {
		return cfg.Data.Labels[i]
	}
	return ""
}

func barChart(cfg *chartjs.Config, title string, width, height int) chart.BarChart {
	ds := cfg.Data.Datasets[0]

	bars := make([]chart.Value, len(ds.Data))
	maxValue := 0.0
	minValue := 0.0
	for i, v := range ds.Data {
		bars[i] = chart.Value{Label: label(cfg, i), Value: v, Style: fillStyle(ds.BackgroundColor.At(i))}
		maxValue = math.Max(maxValue, v)
		minValue = math.Min(minValue, v)
	}

	valueScale := cfg.Options.Scales["y"]

	var ticks *chartjs.Callback
	if valueScale.Ticks != nil {
		ticks = valueScale.Ticks.Callback
	}

	barWidth, spacing := slots(width-120, len(bars))
	bc := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				f, _ := v.(float64)
				return ticks.Apply(f)
			},
		},
		Bars: bars,
	}
	if valueScale.BeginAtZero {
		bc.YAxis.Range = &chart.ContinuousRange{Min: minValue, Max: maxValue}
	}
	if valueScale.Title != nil {
		bc.YAxis.Name = valueScale.Title.Text
	}
	return bc
}

// Horizontal bar layout. The left padding is sized to the product names so
// go-chart never wraps a name into its label column.
const (
	hbarPaddingTop    = 50
	hbarPaddingRight  = 20
	hbarPaddingBottom = 20
	hbarMaxThickness  = 50
	hbarMinSpacing    = 20
)

// horizontalBarChart draws each value as a stacked bar padded with a
// transparent remainder, so bar lengths are relative to the largest value.
func horizontalBarChart(cfg *chartjs.Config, title string, width, height int) (chart.StackedBarChart, error) {
	ds := cfg.Data.Datasets[0]

	var ticks *chartjs.Callback
	if scale, ok := cfg.Options.Scales["x"]; ok && scale.Ticks != nil {
		ticks = scale.Ticks.Callback
	}

	measure, err := axisLabelMeasurer(width, height)
	if err != nil {
		return chart.StackedBarChart{}, err
	}

	maxValue := 0.0
	widest := 0
	names := make([]string, len(ds.Data))
	for i, v := range ds.Data {
		maxValue = math.Max(maxValue, v)
		names[i] = fitLabel(label(cfg, i), width/3, measure)
		if w := measure(names[i]); w > widest {
			widest = w
		}
	}

	transparent := chart.Style{FillColor: drawing.ColorTransparent, StrokeColor: drawing.ColorTransparent}
	thickness, spacing := slots(height-hbarPaddingTop-hbarPaddingBottom, len(ds.Data))
	if thickness > hbarMaxThickness {
		thickness, spacing = hbarMaxThickness, hbarMinSpacing
	}

	bars := make([]chart.StackedBar, len(ds.Data))
	for i, v := range ds.Data {
		v = math.Max(v, 0)
		bars[i] = chart.StackedBar{
			Name:  names[i],
			Width: thickness,
			Values: []chart.Value{
				{Value: maxValue - v, Style: transparent},
				{Value: v, Label: ticks.Apply(v), Style: fillStyle(ds.BackgroundColor.At(i))},
			},
		}
	}

	return chart.StackedBarChart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    hbarPaddingTop,
				Left:   widest + chart.DefaultYAxisMargin,
				Right:  hbarPaddingRight,
				Bottom: hbarPaddingBottom,
				IsSet:  true,
			},
		},
		IsHorizontal: true,
		BarSpacing:   spacing,
		XAxis:        chart.Style{Hidden: true},
		Bars:         bars,
	}, nil
}

// axisLabelMeasurer returns the pixel width of text in go-chart's axis font
func axisLabelMeasurer(width, height int) (func(string) int, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetDPI(chart.DefaultDPI)
	r.SetFont(font)
	r.SetFontSize(chart.DefaultAxisFontSize)

	return func(text string) int {
		if text == "" {
			return 0
		}
		return r.MeasureText(text).Width()
	}, nil
}

// fitLabel collapses whitespace and shortens text with a trailing ellipsis
// until it is narrower than max
func fitLabel(text string, max int, measure func(string) int) string {
	text = strings.Join(strings.Fields(text), " ")
	if measure(text) < max {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		short := string(runes[:n]) + "..."
		if measure(short) < max {
			return short
		}
	}
	return ""
}

func donutChart(cfg *chartjs.Config, title string, width, height int) chart.DonutChart {
	ds := cfg.Data.Datasets[0]

	values := make([]chart.Value, len(ds.Data))
	for i, v := range ds.Data {
		style := fillStyle(ds.BackgroundColor.At(i))
		if ds.BorderColor != "" {
			style.StrokeColor = drawing.ColorFromHex(ds.BorderColor)
			style.StrokeWidth = float64(ds.BorderWidth)
		}
		values[i] = chart.Value{Label: label(cfg, i), Value: math.Max(v, 0), Style: style}
	}

	size := width
	if height < size {
		size = height
	}
	return chart.DonutChart{
		Title:  title,
		Width:  size,
		Height: size,
		Values: values,
	}
}

// slots splits extent into n bar slots and returns the bar thickness and
// the spacing between bars
func slots(extent, n int) (int, int) {
	if n == 0 || extent <= 0 {
		return 1, 1
	}
	slot := extent / n
	bar := slot * 2 / 3
	if bar < 1 {
		bar = 1
	}
	spacing := slot - bar
	if spacing < 1 {
		spacing = 1
	}
	return bar, spacing
}

// renderPlaceholder draws a blank chart area with a centered message
func renderPlaceholder(rp chart.RendererProvider, width, height int, text string, w *bytes.Buffer) error {
	r, err := rp(width, height)
	if err != nil {
		return err
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)
	r.SetFontSize(14)
	r.SetFontColor(drawing.ColorBlack)

	box := r.MeasureText(text)
	r.Text(text, (width-box.Width())/2, (height+box.Height())/2)
	return r.Save(w)
}
