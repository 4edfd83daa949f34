package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
	"github.com/sangkips/salesreport-charts/internal/infrastructure/repository"
	"github.com/sangkips/salesreport-charts/pkg/httpclient"
)

func newUpstream(t *testing.T, failing string) *httptest.Server {
	t.Helper()
	bodies := map[string]string{
		"daily":    `{"labels":["2024-03-01","2024-03-02"],"data":[1500.25,980]}`,
		"category": `{"labels":["Dairy","Bakery","Produce"],"data":[600,400,250]}`,
		"products": `{"labels":["Milk","Bread"],"data":[40,25]}`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("chart_type")
		if kind == failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bodies[kind]))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRun(t *testing.T) {
	server := newUpstream(t, "")
	repo := repository.NewChartDataRepository(httpclient.NewClient(server.URL), repository.DefaultDataPath)
	dir := t.TempDir()

	var out bytes.Buffer
	err := run(context.Background(), repo, options{
		filter: entity.FilterParams{StartDate: "2024-03-01", EndDate: "2024-03-31"},
		outDir: dir,
		format: "png",
		width:  800,
		height: 400,
		only:   "daily, products",
	}, &out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "dailySalesChart.png"))
	assert.FileExists(t, filepath.Join(dir, "productsChart.png"))
	_, statErr := os.Stat(filepath.Join(dir, "categoryChart.png"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Contains(t, out.String(), "dailySalesChart.png")
	assert.Contains(t, out.String(), "productsChart.png")
	assert.NotContains(t, out.String(), "category")
}

func TestRun_Workbook(t *testing.T) {
	server := newUpstream(t, "")
	repo := repository.NewChartDataRepository(httpclient.NewClient(server.URL), repository.DefaultDataPath)
	dir := t.TempDir()

	var out bytes.Buffer
	err := run(context.Background(), repo, options{
		filter: entity.FilterParams{StartDate: "2024-03-01", EndDate: "2024-03-31"},
		outDir: dir,
		format: "xlsx",
	}, &out)
	require.NoError(t, err)

	path := filepath.Join(dir, WorkbookName)
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"dailySalesChart", "categoryChart", "productsChart"}, f.GetSheetList())
	rows, err := f.GetRows("productsChart")
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "40", "40 units"}, rows[1])
	assert.Contains(t, out.String(), WorkbookName+" [categoryChart]")
}

func TestRun_Failure(t *testing.T) {
	server := newUpstream(t, "category")
	repo := repository.NewChartDataRepository(httpclient.NewClient(server.URL), repository.DefaultDataPath)
	dir := t.TempDir()

	var out bytes.Buffer
	err := run(context.Background(), repo, options{
		filter: entity.FilterParams{StartDate: "2024-03-01", EndDate: "2024-03-31"},
		outDir: dir,
		format: "svg",
	}, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 charts failed")
	assert.Contains(t, out.String(), "category  failed:")
	assert.FileExists(t, filepath.Join(dir, "dailySalesChart.svg"))
	assert.FileExists(t, filepath.Join(dir, "productsChart.svg"))
}

func TestRun_InvalidInput(t *testing.T) {
	repo := repository.NewChartDataRepository(httpclient.NewClient("http://127.0.0.1:1"), "")

	err := run(context.Background(), repo, options{
		filter: entity.FilterParams{StartDate: "2024-03-31", EndDate: "2024-03-01"},
		outDir: t.TempDir(),
		format: "png",
	}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run(context.Background(), repo, options{outDir: t.TempDir(), format: "png", only: "weekly"}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run(context.Background(), repo, options{outDir: t.TempDir(), format: "bmp"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseKinds(t *testing.T) {
	kinds, err := parseKinds("")
	require.NoError(t, err)
	assert.Equal(t, enum.ChartKinds, kinds)

	kinds, err = parseKinds("products,daily,products")
	require.NoError(t, err)
	assert.Equal(t, []enum.ChartKind{enum.ChartKindProducts, enum.ChartKindDaily}, kinds)
}
