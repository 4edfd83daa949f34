package service

import (
	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
	"github.com/sangkips/salesreport-charts/pkg/chartjs"
	"github.com/sangkips/salesreport-charts/pkg/format"
)

// Mount ids of the three report canvases
const (
	DailySalesMountID = "dailySalesChart"
	CategoryMountID   = "categoryChart"
	ProductsMountID   = "productsChart"
)

// Formatter callback names understood by the dashboard page
const (
	CallbackCurrency     = "currency"
	CallbackCurrencyTick = "currencyTick"
	CallbackUnits        = "units"
)

var (
	currencyCallback = chartjs.NewCallback(CallbackCurrency, func(v float64) string {
		return format.FormatCurrency(v)
	})
	currencyTickCallback = chartjs.NewCallback(CallbackCurrencyTick, format.FormatCurrencyTick)
	unitsCallback        = chartjs.NewCallback(CallbackUnits, format.FormatUnits)
)

// chartDescriptor is everything that differs between the report charts
type chartDescriptor struct {
	kind       enum.ChartKind
	mountID    string
	errMessage string

	chartType   chartjs.ChartType
	indexAxis   string
	seriesLabel string

	// color is the single dataset colour; empty means one palette colour per label
	color        entity.ColorRole
	hoverColor   string
	borderColor  string
	borderWidth  int
	borderRadius int

	legendPosition string
	tooltip        *chartjs.Callback

	valueAxis     string
	valueTicks    *chartjs.Callback
	valueTitle    string
	categoryAxis  string
	categoryTitle string
}

var chartDescriptors = map[enum.ChartKind]chartDescriptor{
	enum.ChartKindDaily: {
		kind:           enum.ChartKindDaily,
		mountID:        DailySalesMountID,
		errMessage:     "Error loading daily sales chart",
		chartType:      chartjs.BarChartType,
		seriesLabel:    "Daily Sales (R)",
		color:          entity.ColorSuccess,
		hoverColor:     entity.ColorSuccessHover,
		borderWidth:    2,
		borderRadius:   5,
		legendPosition: "top",
		tooltip:        currencyCallback,
		valueAxis:      "y",
		valueTicks:     currencyTickCallback,
		valueTitle:     "Amount (Rands)",
		categoryAxis:   "x",
		categoryTitle:  "Date",
	},
	enum.ChartKindCategory: {
		kind:           enum.ChartKindCategory,
		mountID:        CategoryMountID,
		errMessage:     "Error loading category chart",
		chartType:      chartjs.DoughnutChartType,
		borderColor:    entity.ColorWhite,
		borderWidth:    2,
		legendPosition: "right",
		tooltip:        currencyCallback,
	},
	enum.ChartKindProducts: {
		kind:           enum.ChartKindProducts,
		mountID:        ProductsMountID,
		errMessage:     "Error loading products chart",
		chartType:      chartjs.BarChartType,
		indexAxis:      chartjs.IndexAxisY,
		seriesLabel:    "Quantity Sold",
		color:          entity.ColorPurple,
		hoverColor:     entity.ColorPurpleHover,
		borderWidth:    2,
		borderRadius:   5,
		legendPosition: "top",
		valueAxis:      "x",
		valueTicks:     unitsCallback,
	},
}

// MountID returns the canvas id a chart kind is drawn on
func MountID(kind enum.ChartKind) string {
	return chartDescriptors[kind].mountID
}

// buildConfig maps fetched data onto the chart configuration for d
func buildConfig(d chartDescriptor, data *entity.ChartData) *chartjs.Config {
	dataset := chartjs.Dataset{
		Label:                d.seriesLabel,
		Data:                 data.Data,
		BorderColor:          d.borderColor,
		BorderWidth:          d.borderWidth,
		BorderRadius:         d.borderRadius,
		HoverBackgroundColor: d.hoverColor,
	}
	if d.color != "" {
		c := entity.ChartColor(d.color)
		dataset.BackgroundColor = chartjs.Colors{c}
		dataset.BorderColor = c
	} else {
		dataset.BackgroundColor = entity.CategoryColors(data.Len())
	}

	cfg := &chartjs.Config{
		Type: d.chartType,
		Data: chartjs.Data{
			Labels:   data.Labels,
			Datasets: []chartjs.Dataset{dataset},
		},
		Options: chartjs.Options{
			IndexAxis:           d.indexAxis,
			Responsive:          true,
			MaintainAspectRatio: true,
			Plugins: chartjs.Plugins{
				Legend: chartjs.Legend{
					Display:  true,
					Position: d.legendPosition,
					Labels: chartjs.LegendLabels{
						UsePointStyle: true,
						Padding:       15,
						Font:          chartjs.Font{Size: 12, Weight: "bold"},
					},
				},
			},
		},
	}

	if d.tooltip != nil {
		cfg.Options.Plugins.Tooltip = &chartjs.Tooltip{
			Callbacks: chartjs.TooltipCallbacks{Label: d.tooltip},
		}
	}

	if d.valueAxis != "" {
		cfg.Options.Scales = map[string]chartjs.Scale{}
		value := chartjs.Scale{BeginAtZero: true}
		if d.valueTicks != nil {
			value.Ticks = &chartjs.Ticks{Callback: d.valueTicks}
		}
		if d.valueTitle != "" {
			value.Title = &chartjs.ScaleTitle{Display: true, Text: d.valueTitle}
		}
		cfg.Options.Scales[d.valueAxis] = value

		if d.categoryTitle != "" {
			cfg.Options.Scales[d.categoryAxis] = chartjs.Scale{
				Title: &chartjs.ScaleTitle{Display: true, Text: d.categoryTitle},
			}
		}
	}

	return cfg
}
