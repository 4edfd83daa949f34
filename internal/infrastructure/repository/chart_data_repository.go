package repository

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/sangkips/salesreport-charts/internal/domain/entity"
	"github.com/sangkips/salesreport-charts/internal/domain/enum"
	domainRepo "github.com/sangkips/salesreport-charts/internal/domain/repository"
	"github.com/sangkips/salesreport-charts/pkg/httpclient"
)

// DefaultDataPath is the aggregate endpoint path on the reporting server
const DefaultDataPath = "/sales_reports_data"

// ErrMalformedChartData is returned when the response body is not a
// {labels, data} pair of equal-length arrays
var ErrMalformedChartData = errors.New("malformed chart data")

type chartDataRepository struct {
	client   *httpclient.Client
	dataPath string
}

// NewChartDataRepository creates a chart data repository backed by the
// aggregate endpoint at dataPath on the client's base URL
func NewChartDataRepository(client *httpclient.Client, dataPath string) domainRepo.ChartDataRepository {
	if dataPath == "" {
		dataPath = DefaultDataPath
	}
	return &chartDataRepository{client: client, dataPath: dataPath}
}

// chartDataBody distinguishes missing keys and null members from empty
// arrays and zero values
type chartDataBody struct {
	Labels *[]*string  `json:"labels"`
	Data   *[]*float64 `json:"data"`
	Title  string      `json:"title"`
}

func (r *chartDataRepository) FetchChartData(ctx context.Context, kind enum.ChartKind, filter entity.FilterParams) (*entity.ChartData, error) {
	var raw json.RawMessage
	if err := r.client.GetJSON(ctx, r.dataPath, filter.Query(kind), &raw); err != nil {
		if errors.Is(err, httpclient.ErrInvalidBody) {
			return nil, errors.Wrap(ErrMalformedChartData, err.Error())
		}
		return nil, err
	}
	return decodeChartData(raw)
}

func decodeChartData(raw []byte) (*entity.ChartData, error) {
	var body chartDataBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Wrap(ErrMalformedChartData, err.Error())
	}
	if body.Labels == nil {
		return nil, errors.Wrap(ErrMalformedChartData, "missing labels")
	}
	if body.Data == nil {
		return nil, errors.Wrap(ErrMalformedChartData, "missing data")
	}
	if len(*body.Labels) != len(*body.Data) {
		return nil, errors.Wrapf(ErrMalformedChartData, "%d labels but %d values", len(*body.Labels), len(*body.Data))
	}

	data := &entity.ChartData{
		Labels: make([]string, len(*body.Labels)),
		Data:   make([]float64, len(*body.Data)),
		Title:  body.Title,
	}
	for i, label := range *body.Labels {
		if label == nil {
			return nil, errors.Wrapf(ErrMalformedChartData, "null label at %d", i)
		}
		data.Labels[i] = *label
	}
	for i, v := range *body.Data {
		if v == nil {
			return nil, errors.Wrapf(ErrMalformedChartData, "null value at %d", i)
		}
		data.Data[i] = *v
	}
	return data, nil
}
