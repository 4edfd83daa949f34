package entity

// ColorRole names a semantic colour in the chart palette
type ColorRole string

const (
	ColorPrimary ColorRole = "primary"
	ColorSuccess ColorRole = "success"
	ColorWarning ColorRole = "warning"
	ColorDanger  ColorRole = "danger"
	ColorPurple  ColorRole = "purple"
	ColorPink    ColorRole = "pink"
)

var chartColors = map[ColorRole]string{
	ColorPrimary: "#3B82F6",
	ColorSuccess: "#10B981",
	ColorWarning: "#F59E0B",
	ColorDanger:  "#EF4444",
	ColorPurple:  "#8B5CF6",
	ColorPink:    "#EC4899",
}

var categoryColors = [...]string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#EC4899", "#14B8A6", "#6366F1", "#F97316", "#06B6D4",
}

// Hover and border shades that are not part of the role palette
const (
	ColorSuccessHover = "#059669"
	ColorPurpleHover  = "#7C3AED"
	ColorWhite        = "#FFFFFF"
)

// ChartColor returns the hex colour for a role, or "" for an unknown role
func ChartColor(role ColorRole) string {
	return chartColors[role]
}

// CategoryColors returns n colours from the fixed category palette in
// palette order, wrapping around when n exceeds the palette size.
func CategoryColors(n int) []string {
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		colors[i] = categoryColors[i%len(categoryColors)]
	}
	return colors
}
