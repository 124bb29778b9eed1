package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultCacheDir     = "cache"
	defaultPollInterval = 30 * time.Second
	defaultMaxCacheAge  = 5 * time.Minute
	defaultBrightness   = 100
	defaultPort         = 8080
)

// AppConfig holds application configuration
type AppConfig struct {
	// APIKey is the Last.fm API key (LASTFM_API_KEY, required)
	APIKey string
	// Username is the Last.fm user to follow (LASTFM_USERNAME, required)
	Username string
	// CacheDir is the directory for artwork and track caches
	CacheDir string
	// PollInterval is the delay between sync ticks
	PollInterval time.Duration
	// MaxCacheAge bounds how stale an offline track may be served
	MaxCacheAge time.Duration
	// Brightness is the initial backlight level, 0..100
	Brightness int
	// Preview writes frames to a PNG file instead of the LCD
	Preview bool
	// Browser enables the local preview web server
	Browser bool
	// Port is the preview web server port
	Port int
	// WebhookURL enables Discord notifications when non-empty
	WebhookURL string
}

// Load reads configuration from the environment, including an optional
// .env file in the working directory, and applies defaults.
func Load(logger *zap.Logger) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err == nil {
		logger.Debug("Loaded .env file")
	}
	v.AutomaticEnv()

	v.BindEnv("LASTFM_API_KEY")
	v.BindEnv("LASTFM_USERNAME")
	v.BindEnv("PIMO_CACHE_DIR")
	v.BindEnv("PIMO_POLL_INTERVAL")
	v.BindEnv("PIMO_BRIGHTNESS")
	v.BindEnv("PIMO_PORT")
	v.BindEnv("DISCORD_WEBHOOK_URL")

	v.SetDefault("PIMO_CACHE_DIR", defaultCacheDir)
	v.SetDefault("PIMO_POLL_INTERVAL", int(defaultPollInterval/time.Second))
	v.SetDefault("PIMO_BRIGHTNESS", defaultBrightness)
	v.SetDefault("PIMO_PORT", defaultPort)

	cfg := &AppConfig{
		APIKey:       v.GetString("LASTFM_API_KEY"),
		Username:     v.GetString("LASTFM_USERNAME"),
		CacheDir:     v.GetString("PIMO_CACHE_DIR"),
		PollInterval: time.Duration(v.GetInt("PIMO_POLL_INTERVAL")) * time.Second,
		MaxCacheAge:  defaultMaxCacheAge,
		Brightness:   clamp(v.GetInt("PIMO_BRIGHTNESS"), 0, 100),
		Port:         v.GetInt("PIMO_PORT"),
		WebhookURL:   v.GetString("DISCORD_WEBHOOK_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.String("user", cfg.Username),
		zap.String("cacheDir", cfg.CacheDir),
		zap.Duration("pollInterval", cfg.PollInterval),
		zap.Int("brightness", cfg.Brightness))

	return cfg, nil
}

// Validate checks the fields that make startup impossible when absent
func (c *AppConfig) Validate() error {
	if c.APIKey == "" || c.Username == "" {
		return fmt.Errorf("missing credentials: LASTFM_API_KEY and LASTFM_USERNAME must be set (via environment or .env)")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
