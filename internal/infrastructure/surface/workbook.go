package surface

import (
	"io"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/sangkips/salesreport-charts/internal/application/service"
	"github.com/sangkips/salesreport-charts/pkg/chartjs"
)

// FormatXLSX selects the workbook surface
const FormatXLSX = "xlsx"

const (
	defaultSheet      = "Sheet1"
	defaultHeaderFill = "#374151"
)

// WorkbookSurface writes each chart to its own worksheet: a label/value
// table plus a native Excel chart over it. Sheets follow mount order no
// matter which chart is drawn first.
type WorkbookSurface struct {
	mu     sync.Mutex
	file   *excelize.File
	order  []string
	mounts map[string]bool
	drawn  map[string]bool
}

// NewWorkbookSurface creates an empty workbook. With no mount ids every
// canvas id is accepted and sheets keep the order they were first drawn in.
func NewWorkbookSurface(mountIDs ...string) *WorkbookSurface {
	s := &WorkbookSurface{
		file:  excelize.NewFile(),
		order: append([]string(nil), mountIDs...),
		drawn: make(map[string]bool),
	}
	if len(mountIDs) > 0 {
		s.mounts = make(map[string]bool, len(mountIDs))
		for _, id := range mountIDs {
			s.mounts[id] = true
		}
	}
	return s
}

// Mount implements service.Surface
func (s *WorkbookSurface) Mount(id string) (service.Canvas, bool) {
	if s.mounts != nil && !s.mounts[id] {
		return nil, false
	}
	return &workbookCanvas{surface: s, sheet: id}, true
}

// Sheets returns the chart sheets written so far, in mount order
func (s *WorkbookSurface) Sheets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sheetOrder()
}

func (s *WorkbookSurface) sheetOrder() []string {
	sheets := make([]string, 0, len(s.drawn))
	for _, id := range s.order {
		if s.drawn[id] {
			sheets = append(sheets, id)
		}
	}
	return sheets
}

// Rows returns the table written to a chart sheet
func (s *WorkbookSurface) Rows(sheet string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.GetRows(sheet)
}

// Write serializes the workbook
func (s *WorkbookSurface) Write(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheets := s.sheetOrder()
	if len(sheets) > 0 {
		if idx, err := s.file.GetSheetIndex(defaultSheet); err == nil && idx >= 0 {
			if err := s.file.DeleteSheet(defaultSheet); err != nil {
				return errors.Wrap(err, "remove default sheet")
			}
		}

		// moving each sheet to the front, last first, leaves them in order
		for i := len(sheets) - 1; i >= 0; i-- {
			if err := s.file.MoveSheet(sheets[i], s.file.GetSheetList()[0]); err != nil {
				return errors.Wrapf(err, "order sheet %s", sheets[i])
			}
		}
		s.file.SetActiveSheet(0)
	}
	return s.file.Write(w)
}

// Close releases the workbook
func (s *WorkbookSurface) Close() error {
	return s.file.Close()
}

type workbookCanvas struct {
	surface *WorkbookSurface
	sheet   string
}

func (c *workbookCanvas) Draw(cfg *chartjs.Config) error {
	if cfg == nil || len(cfg.Data.Datasets) == 0 {
		return errors.New("chart config has no dataset")
	}

	s := c.surface
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.file
	if idx, err := f.GetSheetIndex(c.sheet); err == nil && idx >= 0 {
		if err := f.DeleteSheet(c.sheet); err != nil {
			return errors.Wrapf(err, "reset sheet %s", c.sheet)
		}
	}
	if _, err := f.NewSheet(c.sheet); err != nil {
		return errors.Wrapf(err, "create sheet %s", c.sheet)
	}
	if !s.drawn[c.sheet] {
		s.drawn[c.sheet] = true
		if s.mounts == nil {
			s.order = append(s.order, c.sheet)
		}
	}

	ds := cfg.Data.Datasets[0]
	seriesName := ds.Label
	if seriesName == "" {
		seriesName = "Value"
	}
	valueFormat := valueCallback(cfg)

	if err := f.SetSheetRow(c.sheet, "A1", &[]interface{}{"Label", seriesName, "Formatted"}); err != nil {
		return errors.Wrap(err, "write header")
	}
	headerFill := ds.BackgroundColor.At(0)
	if headerFill == "" {
		headerFill = defaultHeaderFill
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
	})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	if err := f.SetCellStyle(c.sheet, "A1", "C1", header); err != nil {
		return errors.Wrap(err, "style header")
	}
	for i, v := range ds.Data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{label(cfg, i), v, valueFormat.Apply(v)}
		if err := f.SetSheetRow(c.sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write row %d", i+1)
		}
	}
	if err := f.SetColWidth(c.sheet, "A", "C", 18); err != nil {
		return errors.Wrap(err, "set column width")
	}

	if len(ds.Data) == 0 {
		return nil
	}

	if err := f.AddChart(c.sheet, "E2", workbookChart(cfg, c.sheet, seriesName, len(ds.Data))); err != nil {
		return errors.Wrapf(err, "add chart to %s", c.sheet)
	}
	return nil
}

// valueCallback picks the formatter used for the Formatted column
func valueCallback(cfg *chartjs.Config) *chartjs.Callback {
	if t := cfg.Options.Plugins.Tooltip; t != nil && t.Callbacks.Label != nil {
		return t.Callbacks.Label
	}
	for _, scale := range cfg.Options.Scales {
		if scale.Ticks != nil && scale.Ticks.Callback != nil {
			return scale.Ticks.Callback
		}
	}
	return nil
}

func workbookChart(cfg *chartjs.Config, sheet, seriesName string, n int) *excelize.Chart {
	ds := cfg.Data.Datasets[0]
	last := strconv.Itoa(n + 1)
	ref := "'" + sheet + "'!"

	series := excelize.ChartSeries{
		Name:       seriesName,
		Categories: ref + "$A$2:$A$" + last,
		Values:     ref + "$B$2:$B$" + last,
	}

	chart := &excelize.Chart{
		Series: []excelize.ChartSeries{series},
		Title:  []excelize.RichTextRun{{Text: seriesName}},
		Legend: excelize.ChartLegend{Position: cfg.Options.Plugins.Legend.Position},
		Dimension: excelize.ChartDimension{
			Width:  640,
			Height: 360,
		},
	}

	switch {
	case cfg.Type == chartjs.DoughnutChartType:
		chart.Type = excelize.Doughnut
	case cfg.IsHorizontal():
		chart.Type = excelize.Bar
	default:
		chart.Type = excelize.Col
	}

	vary := len(ds.BackgroundColor) != 1
	chart.VaryColors = &vary
	if !vary {
		chart.Series[0].Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{ds.BackgroundColor[0]}}
	}
	return chart
}
