package surface_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/salesreport-charts/internal/infrastructure/surface"
	"github.com/sangkips/salesreport-charts/pkg/chartjs"
	"github.com/sangkips/salesreport-charts/pkg/format"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func barConfig(labels []string, data []float64) *chartjs.Config {
	return &chartjs.Config{
		Type: chartjs.BarChartType,
		Data: chartjs.Data{
			Labels: labels,
			Datasets: []chartjs.Dataset{{
				Label:           "Daily Sales (R)",
				Data:            data,
				BackgroundColor: chartjs.Colors{"#10B981"},
			}},
		},
		Options: chartjs.Options{
			Scales: map[string]chartjs.Scale{
				"y": {
					BeginAtZero: true,
					Ticks:       &chartjs.Ticks{Callback: chartjs.NewCallback("currencyTick", format.FormatCurrencyTick)},
				},
			},
		},
	}
}

func TestImageSurface_Draw(t *testing.T) {
	tests := []struct {
		name  string
		mount string
		cfg   *chartjs.Config
	}{
		{
			name:  "vertical bar",
			mount: "dailySalesChart",
			cfg:   barConfig([]string{"2024-03-01", "2024-03-02", "2024-03-03"}, []float64{1200, 850.5, 430}),
		},
		{
			name:  "doughnut",
			mount: "categoryChart",
			cfg: &chartjs.Config{
				Type: chartjs.DoughnutChartType,
				Data: chartjs.Data{
					Labels: []string{"Dairy", "Bakery"},
					Datasets: []chartjs.Dataset{{
						Data:            []float64{300, 120},
						BackgroundColor: chartjs.Colors{"#3B82F6", "#10B981"},
						BorderColor:     "#FFFFFF",
						BorderWidth:     2,
					}},
				},
			},
		},
		{
			name:  "horizontal bar",
			mount: "productsChart",
			cfg: &chartjs.Config{
				Type: chartjs.BarChartType,
				Data: chartjs.Data{
					Labels: []string{"Milk", "Bread"},
					Datasets: []chartjs.Dataset{{
						Label:           "Quantity Sold",
						Data:            []float64{42, 17},
						BackgroundColor: chartjs.Colors{"#8B5CF6"},
					}},
				},
				Options: chartjs.Options{
					IndexAxis: chartjs.IndexAxisY,
					Scales: map[string]chartjs.Scale{
						"x": {BeginAtZero: true, Ticks: &chartjs.Ticks{Callback: chartjs.NewCallback("units", format.FormatUnits)}},
					},
				},
			},
		},
		{
			name:  "empty data renders a placeholder",
			mount: "dailySalesChart",
			cfg:   barConfig([]string{}, []float64{}),
		},
		{
			name:  "all zero values render a placeholder",
			mount: "categoryChart",
			cfg: &chartjs.Config{
				Type: chartjs.DoughnutChartType,
				Data: chartjs.Data{
					Labels:   []string{"Dairy"},
					Datasets: []chartjs.Dataset{{Data: []float64{0}, BackgroundColor: chartjs.Colors{"#3B82F6"}}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			img, err := surface.NewImageSurface(dir, surface.FormatPNG, surface.WithSize(640, 400))
			require.NoError(t, err)

			canvas, ok := img.Mount(tt.mount)
			require.True(t, ok)
			require.NoError(t, canvas.Draw(tt.cfg))

			path := filepath.Join(dir, tt.mount+".png")
			assert.Equal(t, path, img.Path(tt.mount))
			assert.Equal(t, map[string]string{tt.mount: path}, img.Written())

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(raw, pngMagic))
		})
	}
}

func productsConfig(n int) *chartjs.Config {
	names := []string{"Milk", "Brown Bread 700g", "Full Cream Milk 2L", "Extra-Large-Free-Range-Eggs-Tray-Of-Thirty", "Bread\nRolls"}
	labels := make([]string, n)
	data := make([]float64, n)
	for i := range labels {
		labels[i] = names[i%len(names)]
		data[i] = float64(10 * (n - i))
	}
	return &chartjs.Config{
		Type: chartjs.BarChartType,
		Data: chartjs.Data{
			Labels: labels,
			Datasets: []chartjs.Dataset{{
				Label:           "Quantity Sold",
				Data:            data,
				BackgroundColor: chartjs.Colors{"#8B5CF6"},
			}},
		},
		Options: chartjs.Options{
			IndexAxis: chartjs.IndexAxisY,
			Scales: map[string]chartjs.Scale{
				"x": {BeginAtZero: true, Ticks: &chartjs.Ticks{Callback: chartjs.NewCallback("units", format.FormatUnits)}},
			},
		},
	}
}

func TestImageSurface_HorizontalBarDefaultSize(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 20} {
		t.Run(fmt.Sprintf("%d products", n), func(t *testing.T) {
			dir := t.TempDir()
			img, err := surface.NewImageSurface(dir, surface.FormatPNG)
			require.NoError(t, err)

			canvas, ok := img.Mount("productsChart")
			require.True(t, ok)
			require.NoError(t, canvas.Draw(productsConfig(n)))

			raw, err := os.ReadFile(filepath.Join(dir, "productsChart.png"))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(raw, pngMagic))
		})
	}
}

func TestImageSurface_SVG(t *testing.T) {
	dir := t.TempDir()
	img, err := surface.NewImageSurface(dir, surface.FormatSVG)
	require.NoError(t, err)

	canvas, ok := img.Mount("dailySalesChart")
	require.True(t, ok)
	require.NoError(t, canvas.Draw(barConfig([]string{"2024-03-01"}, []float64{99.5})))

	raw, err := os.ReadFile(filepath.Join(dir, "dailySalesChart.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<svg")
}

func TestImageSurface_WithMounts(t *testing.T) {
	img, err := surface.NewImageSurface(t.TempDir(), surface.FormatPNG, surface.WithMounts("productsChart"))
	require.NoError(t, err)

	_, ok := img.Mount("productsChart")
	assert.True(t, ok)
	_, ok = img.Mount("dailySalesChart")
	assert.False(t, ok)
}

func TestImageSurface_Errors(t *testing.T) {
	_, err := surface.NewImageSurface(t.TempDir(), "gif")
	assert.Error(t, err)

	img, err := surface.NewImageSurface(t.TempDir(), surface.FormatPNG)
	require.NoError(t, err)
	canvas, _ := img.Mount("dailySalesChart")

	assert.Error(t, canvas.Draw(&chartjs.Config{Type: chartjs.BarChartType}))
	assert.Empty(t, img.Written())
}
