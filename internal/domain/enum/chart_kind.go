package enum

import (
	"encoding/json"
	"fmt"
)

// ChartKind selects both the aggregate query and the visualization shape
type ChartKind int

const (
	ChartKindDaily    ChartKind = 0
	ChartKindCategory ChartKind = 1
	ChartKindProducts ChartKind = 2
)

// ChartKinds lists every kind in render order
var ChartKinds = []ChartKind{ChartKindDaily, ChartKindCategory, ChartKindProducts}

func (k ChartKind) String() string {
	names := [...]string{"daily", "category", "products"}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// IsValid reports whether k is one of the known chart kinds
func (k ChartKind) IsValid() bool {
	return k >= ChartKindDaily && k <= ChartKindProducts
}

// ParseChartKind maps the chart_type query value onto a ChartKind
func ParseChartKind(s string) (ChartKind, error) {
	switch s {
	case "daily":
		return ChartKindDaily, nil
	case "category":
		return ChartKindCategory, nil
	case "products":
		return ChartKindProducts, nil
	}
	return 0, fmt.Errorf("unknown chart type %q", s)
}

func (k ChartKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ChartKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if !ChartKind(i).IsValid() {
			return fmt.Errorf("unknown chart kind %d", i)
		}
		*k = ChartKind(i)
		return nil
	}
	parsed, err := ParseChartKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
