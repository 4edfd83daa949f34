package config

import (
	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/pkg/httpclient"
)

// ClientOptions maps the upstream settings onto aggregate client options.
// User agent, timeout and retries are only set when configured.
func (u *UpstreamConfig) ClientOptions(logger *zap.Logger) []httpclient.ClientOption {
	opts := []httpclient.ClientOption{httpclient.WithLogger(logger)}
	if u.UserAgent != "" {
		opts = append(opts, httpclient.WithDefaultHeader("User-Agent", u.UserAgent))
	}
	if u.Timeout > 0 {
		opts = append(opts, httpclient.WithTimeout(u.Timeout))
	}
	if u.MaxRetries > 0 {
		retry := httpclient.DefaultRetryConfig()
		retry.MaxRetries = u.MaxRetries
		opts = append(opts, httpclient.WithRetryConfig(retry))
	}
	return opts
}

// NewClient creates the aggregate endpoint client
func (u *UpstreamConfig) NewClient(logger *zap.Logger) *httpclient.Client {
	return httpclient.NewClient(u.BaseURL, u.ClientOptions(logger)...)
}
