package domain

import (
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

// Narrator providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

const (
	// DefaultAddr is the listen address of the HTTP server.
	DefaultAddr = ":8888"
	// DefaultDebounce is the quiet period before a location lookup fires.
	DefaultDebounce = 1500 * time.Millisecond
	// DefaultZoomThreshold is the minimum zoom level at which lookups run.
	DefaultZoomThreshold = 8
	// DefaultLookupTimeout bounds one geocode plus narrate round trip.
	DefaultLookupTimeout = 20 * time.Second
	// DefaultGeocoderURL is the Nominatim instance used for reverse geocoding.
	DefaultGeocoderURL = "https://nominatim.openstreetmap.org"
	// DefaultUserAgent identifies the client to Nominatim, which rejects anonymous traffic.
	DefaultUserAgent = "atlas/1.0"
)

// Config is the project configuration read from atlas.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data"`
	Lookup   LookupConfig   `yaml:"lookup"`
	Narrator NarratorConfig `yaml:"narrator"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`

	// Root is the directory holding the config file, or the working directory without one.
	Root string `yaml:"-"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr   string `yaml:"addr"`
	WebDir string `yaml:"web_dir"`
}

// DataConfig locates the datasets.
type DataConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

// LookupConfig tunes the location lookup pipeline.
type LookupConfig struct {
	Debounce      time.Duration `yaml:"debounce"`
	ZoomThreshold int           `yaml:"zoom_threshold"`
	Timeout       time.Duration `yaml:"timeout"`
	Bucket        int           `yaml:"bucket"`
}

// NarratorConfig selects the narrative provider. The API key is never read from the file.
type NarratorConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"-"`
}

// GeocoderConfig configures reverse geocoding.
type GeocoderConfig struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

// CacheConfig selects the lookup store. An empty RedisAddr keeps the cache in memory.
type CacheConfig struct {
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON bool `yaml:"json"`
}

// DefaultConfig returns the configuration used when no atlas.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr, WebDir: WebDirName},
		Data:   DataConfig{Dir: DataDirName},
		Lookup: LookupConfig{
			Debounce:      DefaultDebounce,
			ZoomThreshold: DefaultZoomThreshold,
			Timeout:       DefaultLookupTimeout,
			Bucket:        DefaultBucketSize,
		},
		Narrator: NarratorConfig{Provider: ProviderAnthropic},
		Geocoder: GeocoderConfig{BaseURL: DefaultGeocoderURL, UserAgent: DefaultUserAgent},
		Root:     ".",
	}
}

// Validate rejects values the lookup pipeline and server cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Lookup.Debounce < 0:
		return invalidConfig("lookup.debounce", c.Lookup.Debounce)
	case c.Lookup.ZoomThreshold < 0:
		return invalidConfig("lookup.zoom_threshold", c.Lookup.ZoomThreshold)
	case c.Lookup.Timeout <= 0:
		return invalidConfig("lookup.timeout", c.Lookup.Timeout)
	case c.Lookup.Bucket <= 0:
		return invalidConfig("lookup.bucket", c.Lookup.Bucket)
	case c.Narrator.MaxTokens < 0:
		return invalidConfig("narrator.max_tokens", c.Narrator.MaxTokens)
	}
	switch c.Narrator.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return zerr.With(zerr.Wrap(ErrUnknownProvider, "invalid configuration"), "provider", c.Narrator.Provider)
	}
	return nil
}

func invalidConfig(field string, value any) error {
	return zerr.With(zerr.With(zerr.Wrap(ErrInvalidConfig, "value out of range"), "field", field), "value", value)
}

// Path resolves p against the config root unless it is absolute.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// DataDir returns the resolved dataset directory.
func (c *Config) DataDir() string {
	return c.Path(c.Data.Dir)
}

// WebDir returns the resolved static file directory.
func (c *Config) WebDir() string {
	return c.Path(c.Server.WebDir)
}
