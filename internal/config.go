package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "planefolio"
	configFileName = "config.yaml"

	EnvCatalog   = "PLANEFOLIO_CATALOG"
	EnvPhotoRoot = "PLANEFOLIO_PHOTO_ROOT"
	EnvDarkMode  = "PLANEFOLIO_DARK_MODE"
	EnvDebugLog  = "PLANEFOLIO_DEBUG_LOG"
)

var ErrParseConfig = errors.New("error parsing config")

// AppConfig holds everything that can be set in the config file, the environment or on the
// command line. Later sources override earlier ones in that order.
type AppConfig struct {
	CatalogPath string // YAML catalog, the built-in portfolio is used when empty
	PhotoRoot   string // directory the photo resource paths are resolved against
	DarkMode    bool
	InitialView View
	Filter      string
	DebugLog    string
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		PhotoRoot:   DefaultPhotoRoot,
		DarkMode:    true,
		InitialView: Home,
	}
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, configDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", configDirName)
}

// DefaultConfigPath is the config file used when none is given explicitly.
func DefaultConfigPath() string {
	return filepath.Join(getConfigDir(), configFileName)
}

// LoadConfig reads the YAML config at configPath, or at DefaultConfigPath if configPath is empty.
// A missing default config file is not an error.
func LoadConfig(configPath string) (*AppConfig, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath()
	}

	data, readErr := os.ReadFile(configPath) //nolint:gosec // path is provided by the user
	if readErr != nil {
		if !explicit && errors.Is(readErr, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("loadConfig: failed to read %s: %w", configPath, readErr)
	}

	var yamlData map[string]any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return nil, fmt.Errorf("loadConfig: %w: %s: %w", ErrParseConfig, configPath, err)
	}

	cfg, parseErr := parseConfig(yamlData)
	if parseErr != nil {
		return nil, fmt.Errorf("loadConfig: %s: %w", configPath, parseErr)
	}
	return cfg, nil
}

func parseConfig(data map[string]any) (*AppConfig, error) {
	cfg := DefaultConfig()

	if catalog, ok := data["catalog"].(string); ok {
		cfg.CatalogPath = strings.TrimSpace(catalog)
	}
	if photoRoot, ok := data["photo_root"].(string); ok {
		if photoRoot = strings.TrimSpace(photoRoot); photoRoot != "" {
			cfg.PhotoRoot = photoRoot
		}
	}
	if debugLog, ok := data["debug_log"].(string); ok {
		cfg.DebugLog = strings.TrimSpace(debugLog)
	}
	if filter, ok := data["filter"].(string); ok {
		cfg.Filter = filter
	}
	if view, ok := data["view"].(string); ok {
		parsed, err := ParseView(view)
		if err != nil {
			return nil, fmt.Errorf("parseConfig: %w: %w", ErrParseConfig, err)
		}
		cfg.InitialView = parsed
	}
	cfg.DarkMode = coerceBool(data["dark_mode"], cfg.DarkMode)

	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment, if there is one.
// Variables which are already set are left alone.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loadDotEnv: %w", err)
	}
	return nil
}

// ApplyEnv overrides config values with the PLANEFOLIO_* variables found by lookup.
func (cfg *AppConfig) ApplyEnv(lookup func(string) (string, bool)) {
	if value, ok := lookup(EnvCatalog); ok {
		cfg.CatalogPath = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvPhotoRoot); ok && strings.TrimSpace(value) != "" {
		cfg.PhotoRoot = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvDarkMode); ok {
		cfg.DarkMode = coerceBool(value, cfg.DarkMode)
	}
	if value, ok := lookup(EnvDebugLog); ok {
		cfg.DebugLog = strings.TrimSpace(value)
	}
}

// Catalog loads the configured catalog, falling back to the built-in one.
func (cfg *AppConfig) Catalog() (*Catalog, error) {
	if cfg.CatalogPath == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFile(cfg.CatalogPath)
}

// ViewOptions turns the configured initial state into ViewController options.
func (cfg *AppConfig) ViewOptions() []ViewOption {
	return []ViewOption{
		WithDarkMode(cfg.DarkMode),
		WithView(cfg.InitialView),
		WithFilterQuery(cfg.Filter),
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}
