package entity

// ChartData is the pre-aggregated payload returned by the aggregate endpoint.
// Labels[i] corresponds to Data[i]; both may be empty.
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Title  string    `json:"title,omitempty"`
}

// Len returns the number of points
func (d *ChartData) Len() int {
	return len(d.Labels)
}
