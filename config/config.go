package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultHTTPHost     = "127.0.0.1"
	defaultHTTPPort     = 8080
	defaultHTTPBodySize = "1M"

	defaultGeocoderBaseURL   = "https://nominatim.openstreetmap.org"
	defaultGeocoderCountry   = "dk"
	defaultGeocoderLimit     = 5
	defaultGeocoderUserAgent = "koerplan/1.0"
	defaultGeocoderRate      = 1.0

	defaultRouterProvider = RouterProviderOSRM
	defaultRouterBaseURL  = "https://router.project-osrm.org"
	defaultRouterProfile  = "driving"
	defaultRouterSpeedKmh = 50.0

	defaultClientTimeout    = 15 * time.Second
	defaultCrossingDuration = 5400 * time.Second

	defaultAliasSource = "locations.ini"

	defaultLedgerTarget   = "Koerplan.xlsx"
	defaultLedgerStartRow = 23
	defaultLedgerMaxRow   = 1000

	defaultSnapshotWidth   = 800
	defaultSnapshotHeight  = 400
	defaultSnapshotQuality = 80
)

// Router providers
const (
	RouterProviderOSRM      = "osrm"
	RouterProviderHaversine = "haversine"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Geocoder configuration for the address lookup service
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// Router configuration for the driving route service
	Router *RouterConfig `json:"router" yaml:"router"`

	// Aliases configuration for address shorthands
	Aliases *AliasConfig `json:"aliases" yaml:"aliases"`

	// Ferry configuration for the two-leg crossing mode
	Ferry *FerryConfig `json:"ferry" yaml:"ferry"`

	// Composer configuration for trip composition
	Composer *ComposerConfig `json:"composer" yaml:"composer"`

	// Ledger configuration for the mileage spreadsheet
	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	// Snapshot configuration for map images saved next to the ledger
	Snapshot *SnapshotConfig `json:"snapshot" yaml:"snapshot"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeocoderConfig defines the Nominatim-compatible geocoding client
type GeocoderConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// ISO country codes the search is restricted to, comma separated
	CountryCodes string `json:"countryCodes" yaml:"countryCodes"`

	// Maximum number of candidates requested
	Limit int `json:"limit" yaml:"limit"`

	// User-Agent sent with every request (required by the public Nominatim instance)
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Client-side request rate limit
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
}

// RouterConfig defines the routing client
type RouterConfig struct {
	// Provider type: "osrm" for an OSRM HTTP service or "haversine" for offline straight-line estimates
	Provider string `json:"provider" yaml:"provider"`

	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Profile string        `json:"profile" yaml:"profile"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Speed used by the haversine provider for duration estimates
	DefaultSpeedKmh float64 `json:"defaultSpeedKmh" yaml:"defaultSpeedKmh"`
}

// AliasConfig defines where the alias table is read from
type AliasConfig struct {
	// Local file path or http(s) URL of a key = value file
	Source string `json:"source" yaml:"source"`
}

// FerryConfig defines the ferry terminals and crossing time
type FerryConfig struct {
	Terminals        []FerryTerminalConfig `json:"terminals" yaml:"terminals"`
	CrossingDuration time.Duration         `json:"crossingDuration" yaml:"crossingDuration"`
}

// FerryTerminalConfig is one ferry terminal anchor
type FerryTerminalConfig struct {
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lon  float64 `json:"lon" yaml:"lon"`
}

// ComposerConfig defines trip composition behaviour
type ComposerConfig struct {
	// Request independent legs concurrently instead of one after another
	ParallelLegs bool `json:"parallelLegs" yaml:"parallelLegs"`
}

// LedgerConfig defines the spreadsheet ledger
type LedgerConfig struct {
	// Template preselected at startup (optional)
	TemplatePath string `json:"templatePath" yaml:"templatePath"`

	// File name of the accumulating ledger, created next to the template
	TargetFilename string `json:"targetFilename" yaml:"targetFilename"`

	// First row scanned for free space and the last row considered
	StartRow int `json:"startRow" yaml:"startRow"`
	MaxRow   int `json:"maxRow" yaml:"maxRow"`

	// Write all rows of one save in a single open/save cycle (all-or-nothing)
	AtomicBatch bool `json:"atomicBatch" yaml:"atomicBatch"`
}

// SnapshotConfig defines the map images stored on save
type SnapshotConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Width   int  `json:"width" yaml:"width"`
	Height  int  `json:"height" yaml:"height"`
	Quality int  `json:"quality" yaml:"quality"`
}

// DefaultFerryTerminals are the Odden and Aarhus terminals of the Kattegat crossing
func DefaultFerryTerminals() []FerryTerminalConfig {
	return []FerryTerminalConfig{
		{Name: "Odden", Lat: 55.9725, Lon: 11.4280},
		{Name: "Aarhus", Lat: 56.1495, Lon: 10.2190},
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GEOCODER_BASEURL -> geocoder.baseUrl (not geocoder.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every unset section and field with its default value
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.Host) == "" {
		cfg.HTTP.Host = defaultHTTPHost
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if cfg.HTTP.MaxRequestBodySize == "" {
		cfg.HTTP.MaxRequestBodySize = defaultHTTPBodySize
	}

	cfg.Geocoder = applyGeocoderDefaults(cfg.Geocoder)
	cfg.Router = applyRouterDefaults(cfg.Router)

	if cfg.Aliases == nil {
		cfg.Aliases = &AliasConfig{}
	}
	if cfg.Aliases.Source == "" {
		cfg.Aliases.Source = defaultAliasSource
	}

	if cfg.Ferry == nil {
		cfg.Ferry = &FerryConfig{}
	}
	if len(cfg.Ferry.Terminals) != 2 {
		cfg.Ferry.Terminals = DefaultFerryTerminals()
	}
	if cfg.Ferry.CrossingDuration <= 0 {
		cfg.Ferry.CrossingDuration = defaultCrossingDuration
	}

	if cfg.Composer == nil {
		cfg.Composer = &ComposerConfig{}
	}

	cfg.Ledger = applyLedgerDefaults(cfg.Ledger)

	if cfg.Snapshot == nil {
		cfg.Snapshot = &SnapshotConfig{Enabled: true}
	}
	if cfg.Snapshot.Width <= 0 {
		cfg.Snapshot.Width = defaultSnapshotWidth
	}
	if cfg.Snapshot.Height <= 0 {
		cfg.Snapshot.Height = defaultSnapshotHeight
	}
	if cfg.Snapshot.Quality <= 0 || cfg.Snapshot.Quality > 100 {
		cfg.Snapshot.Quality = defaultSnapshotQuality
	}
}

func applyGeocoderDefaults(cfg *GeocoderConfig) *GeocoderConfig {
	if cfg == nil {
		cfg = &GeocoderConfig{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeocoderBaseURL
	}
	if cfg.CountryCodes == "" {
		cfg.CountryCodes = defaultGeocoderCountry
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultGeocoderLimit
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultGeocoderUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultClientTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultGeocoderRate
	}

	return cfg
}

func applyRouterDefaults(cfg *RouterConfig) *RouterConfig {
	if cfg == nil {
		cfg = &RouterConfig{}
	}
	if cfg.Provider == "" {
		cfg.Provider = defaultRouterProvider
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultRouterBaseURL
	}
	if cfg.Profile == "" {
		cfg.Profile = defaultRouterProfile
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultClientTimeout
	}
	if cfg.DefaultSpeedKmh <= 0 {
		cfg.DefaultSpeedKmh = defaultRouterSpeedKmh
	}

	return cfg
}

func applyLedgerDefaults(cfg *LedgerConfig) *LedgerConfig {
	if cfg == nil {
		cfg = &LedgerConfig{}
	}
	if cfg.TargetFilename == "" {
		cfg.TargetFilename = defaultLedgerTarget
	}
	if cfg.StartRow <= 0 {
		cfg.StartRow = defaultLedgerStartRow
	}
	if cfg.MaxRow < cfg.StartRow {
		cfg.MaxRow = defaultLedgerMaxRow
	}

	return cfg
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
