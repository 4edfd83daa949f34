// Package chartjs holds typed structs for the subset of the Chart.js
// configuration object used by the sales report charts.
//
// A Config marshals to the {type, data, options} object passed to the
// Chart constructor. Formatter callbacks cannot travel as JSON, so they are
// carried as named Callbacks: the host page resolves the name, while Go
// renderers call Format directly.
package chartjs

import "encoding/json"

// ChartType is the Chart.js chart type
type ChartType string

const (
	BarChartType      ChartType = "bar"
	DoughnutChartType ChartType = "doughnut"
)

// IndexAxisY turns a bar chart horizontal
const IndexAxisY = "y"

// Config is the object handed to the Chart constructor
type Config struct {
	Type    ChartType `json:"type"`
	Data    Data      `json:"data"`
	Options Options   `json:"options"`
}

// IsHorizontal reports whether the chart plots values along the x axis
func (c *Config) IsHorizontal() bool {
	return c.Options.IndexAxis == IndexAxisY
}

// Data holds the category labels and the datasets plotted against them
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is a single series
type Dataset struct {
	Label                string    `json:"label,omitempty"`
	Data                 []float64 `json:"data"`
	BackgroundColor      Colors    `json:"backgroundColor"`
	BorderColor          string    `json:"borderColor,omitempty"`
	BorderWidth          int       `json:"borderWidth,omitempty"`
	BorderRadius         int       `json:"borderRadius,omitempty"`
	HoverBackgroundColor string    `json:"hoverBackgroundColor,omitempty"`
}

// Colors is either one colour for the whole dataset or one colour per point.
// A single entry marshals as a plain string.
type Colors []string

func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(c))
}

func (c *Colors) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*c = Colors{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*c = many
	return nil
}

// At returns the colour for point i
func (c Colors) At(i int) string {
	if len(c) == 0 {
		return ""
	}
	if len(c) == 1 {
		return c[0]
	}
	return c[i%len(c)]
}

// Options are the chart options
type Options struct {
	IndexAxis           string           `json:"indexAxis,omitempty"`
	Responsive          bool             `json:"responsive"`
	MaintainAspectRatio bool             `json:"maintainAspectRatio"`
	Plugins             Plugins          `json:"plugins"`
	Scales              map[string]Scale `json:"scales,omitempty"`
}

// Plugins configures the legend and tooltip plugins
type Plugins struct {
	Legend  Legend   `json:"legend"`
	Tooltip *Tooltip `json:"tooltip,omitempty"`
}

// Legend configures the chart legend
type Legend struct {
	Display  bool         `json:"display"`
	Position string       `json:"position"`
	Labels   LegendLabels `json:"labels"`
}

// LegendLabels styles the legend entries
type LegendLabels struct {
	UsePointStyle bool `json:"usePointStyle"`
	Padding       int  `json:"padding"`
	Font          Font `json:"font"`
}

// Font is a Chart.js font spec
type Font struct {
	Size   int    `json:"size"`
	Weight string `json:"weight,omitempty"`
}

// Tooltip configures the tooltip plugin
type Tooltip struct {
	Callbacks TooltipCallbacks `json:"callbacks"`
}

// TooltipCallbacks holds the tooltip formatters
type TooltipCallbacks struct {
	Label *Callback `json:"label,omitempty"`
}

// Scale configures one axis
type Scale struct {
	BeginAtZero bool        `json:"beginAtZero,omitempty"`
	Ticks       *Ticks      `json:"ticks,omitempty"`
	Title       *ScaleTitle `json:"title,omitempty"`
}

// Ticks configures axis ticks
type Ticks struct {
	Callback *Callback `json:"callback,omitempty"`
}

// ScaleTitle labels an axis
type ScaleTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}
