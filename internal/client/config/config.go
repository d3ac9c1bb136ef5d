package config

import (
	"fmt"
	"time"
)

// S3Config enables s3://bucket/key links in download-from-URL. Leaving
// Region empty disables the feature.
type S3Config struct {
	Region       string        `env:"FILEDESK_S3_REGION"`
	BaseEndpoint string        `env:"FILEDESK_S3_ENDPOINT"`
	AccessKey    string        `env:"FILEDESK_S3_ACCESS_KEY"`
	SecretKey    string        `env:"FILEDESK_S3_SECRET_KEY"`
	PresignTTL   time.Duration `env:"FILEDESK_S3_PRESIGN_TTL"`
}

func (c S3Config) Enabled() bool {
	return c.Region != ""
}

// Config holds runtime settings for the filedesk CLI.
type Config struct {
	ServerURL      string        `env:"FILEDESK_SERVER_URL"`
	DownloadDir    string        `env:"FILEDESK_DOWNLOAD_DIR"`
	RequestTimeout time.Duration `env:"FILEDESK_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"FILEDESK_LOG_LEVEL"`
	S3             S3Config
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.DownloadDir = "downloads"
	c.RequestTimeout = 60 * time.Second
	c.LogLevel = "info"
	c.S3.PresignTTL = 15 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
