package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Server   ServerConfig   `mapstructure:"server"`
	Profiler ProfilerConfig `mapstructure:"profiler"`
	Mock     MockConfig     `mapstructure:"mock"`
	Chat     ChatConfig     `mapstructure:"chat"`
	Log      LogConfig      `mapstructure:"log"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	CORSOrigins     string `mapstructure:"cors_origins"`
	RateLimitPerMin int    `mapstructure:"rate_limit_per_min"`
}

// ProfilerConfig selects the profiling backend: the in-process mock or a remote API.
type ProfilerConfig struct {
	Mode      string        `mapstructure:"mode"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	WaitReady time.Duration `mapstructure:"wait_ready"`
}

type MockConfig struct {
	LatencyScale float64 `mapstructure:"latency_scale"`
}

type ChatConfig struct {
	StaticDelay    time.Duration `mapstructure:"static_delay"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

const (
	ModeMock   = "mock"
	ModeRemote = "remote"
)

// LoadConfig reads path if it exists and applies defaults and environment
// overrides. Nested keys map to upper case env vars, e.g. SERVER_ADDR.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cors_origins", "*")
	v.SetDefault("server.rate_limit_per_min", 60)
	v.SetDefault("profiler.mode", ModeMock)
	v.SetDefault("profiler.base_url", "http://localhost:8000/api")
	v.SetDefault("profiler.timeout", 30*time.Second)
	v.SetDefault("profiler.wait_ready", 30*time.Second)
	v.SetDefault("mock.latency_scale", 1.0)
	v.SetDefault("chat.static_delay", time.Second)
	v.SetDefault("chat.request_timeout", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("telegram.token", "")

	// Enable environment variable support
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Get other environment variables
	if token := v.GetString("TELEGRAM_TOKEN"); token != "" {
		config.Telegram.Token = token
	}
	if baseURL := v.GetString("PROFILER_BASE_URL"); baseURL != "" {
		config.Profiler.BaseURL = baseURL
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Profiler.Mode {
	case ModeMock, ModeRemote:
	default:
		return fmt.Errorf("invalid profiler.mode %q, want %q or %q", c.Profiler.Mode, ModeMock, ModeRemote)
	}
	if c.Mock.LatencyScale < 0 {
		return fmt.Errorf("mock.latency_scale must not be negative")
	}
	return nil
}
