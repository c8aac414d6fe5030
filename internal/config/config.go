package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Service svcConfig
	Limits  limitsConfig
	Share   shareConfig
}

type svcConfig struct {
	Address  string `envconfig:"ESPUMA_ADDRESS" default:":8080"`
	BaseUrl  string `envconfig:"ESPUMA_BASE_URL" default:"http://localhost:8080"`
	LogLevel string `envconfig:"ESPUMA_LOG_LEVEL" default:"info"`
	TLSCert  string `envconfig:"ESPUMA_TLS_CERT" default:""`
	TLSKey   string `envconfig:"ESPUMA_TLS_KEY" default:""`
}

type limitsConfig struct {
	RatePerSecond float64 `envconfig:"ESPUMA_RATE_LIMIT" default:"1"`
	Burst         int     `envconfig:"ESPUMA_RATE_BURST" default:"3"`
	MaxUploadMB   int64   `envconfig:"ESPUMA_MAX_UPLOAD_MB" default:"10"`
	MaxBatchItems int     `envconfig:"ESPUMA_MAX_BATCH_ITEMS" default:"500"`
}

type shareConfig struct {
	// Key signs share links. Share endpoints are disabled when empty.
	Key string `envconfig:"ESPUMA_SHARE_KEY" default:""`
}

// TLS reports whether both certificate and key are configured.
func (c *Config) TLS() bool {
	return c.Service.TLSCert != "" && c.Service.TLSKey != ""
}

// MaxUploadBytes is the multipart size limit for spreadsheet imports.
func (c *Config) MaxUploadBytes() int64 {
	return c.Limits.MaxUploadMB << 20
}

// New loads the given dotenv files (".env" when none are given; missing files
// are ignored) and then reads the configuration from the environment.
// Variables already set in the environment win over the files.
func New(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
