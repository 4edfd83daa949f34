package config_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")
	t.Setenv("UPSTREAM_MAX_RETRIES", "")

	cfg := config.Load()

	assert.Equal(t, "salesreport-charts", cfg.App.Name)
	assert.Equal(t, "salesreport-charts", cfg.Upstream.UserAgent)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "/sales_reports_data", cfg.Upstream.DataPath)
	assert.Equal(t, time.Duration(0), cfg.Upstream.Timeout)
	assert.Equal(t, "png", cfg.Render.Format)
	assert.Equal(t, 1024, cfg.Render.Width)
	assert.Equal(t, 512, cfg.Render.Height)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://pos.internal:5000")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "15")
	t.Setenv("UPSTREAM_MAX_RETRIES", "2")
	t.Setenv("RENDER_FORMAT", "svg")

	cfg := config.Load()

	assert.Equal(t, "http://pos.internal:5000", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 2, cfg.Upstream.MaxRetries)
	assert.Equal(t, "svg", cfg.Render.Format)
}

func TestUpstreamConfig_NewClient(t *testing.T) {
	var calls int32
	var userAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent.Store(r.Header.Get("User-Agent"))
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"labels":[],"data":[]}`))
	}))
	defer server.Close()

	t.Run("retries when configured", func(t *testing.T) {
		atomic.StoreInt32(&calls, 0)
		u := &config.UpstreamConfig{BaseURL: server.URL, UserAgent: "salesreport-charts", MaxRetries: 1, Timeout: 5 * time.Second}
		client := u.NewClient(zap.NewNop())

		var body map[string]interface{}
		require.NoError(t, client.GetJSON(context.Background(), "/sales_reports_data", nil, &body))
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
		assert.Equal(t, "salesreport-charts", userAgent.Load())
	})

	t.Run("no retries by default", func(t *testing.T) {
		atomic.StoreInt32(&calls, 0)
		u := &config.UpstreamConfig{BaseURL: server.URL}
		client := u.NewClient(zap.NewNop())

		var body map[string]interface{}
		assert.Error(t, client.GetJSON(context.Background(), "/sales_reports_data", nil, &body))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}
