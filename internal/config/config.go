package config

import (
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sangkips/salesreport-charts/pkg/logger"
)

type Config struct {
	App       AppConfig
	Upstream  UpstreamConfig
	Render    RenderConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// UpstreamConfig points at the aggregate endpoint serving chart data.
// A zero Timeout or MaxRetries disables that behaviour.
type UpstreamConfig struct {
	BaseURL    string
	DataPath   string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
}

// RenderConfig controls the image surface used by the batch renderer
type RenderConfig struct {
	OutputDir string
	Format    string
	Width     int
	Height    int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn(".env file not found, using environment variables", zap.Error(err))
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "salesreport-charts")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:5000")
	viper.SetDefault("UPSTREAM_DATA_PATH", "/sales_reports_data")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 0)
	viper.SetDefault("UPSTREAM_MAX_RETRIES", 0)
	viper.SetDefault("RENDER_OUTPUT_DIR", "./charts")
	viper.SetDefault("RENDER_FORMAT", "png")
	viper.SetDefault("RENDER_WIDTH", 1024)
	viper.SetDefault("RENDER_HEIGHT", 512)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Upstream: UpstreamConfig{
			BaseURL:    viper.GetString("UPSTREAM_BASE_URL"),
			DataPath:   viper.GetString("UPSTREAM_DATA_PATH"),
			UserAgent:  viper.GetString("APP_NAME"),
			Timeout:    time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
			MaxRetries: viper.GetInt("UPSTREAM_MAX_RETRIES"),
		},
		Render: RenderConfig{
			OutputDir: viper.GetString("RENDER_OUTPUT_DIR"),
			Format:    viper.GetString("RENDER_FORMAT"),
			Width:     viper.GetInt("RENDER_WIDTH"),
			Height:    viper.GetInt("RENDER_HEIGHT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
