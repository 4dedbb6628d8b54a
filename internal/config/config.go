package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"ytlookup/pkg/models"
)

var (
	ErrInvalidPort   = errors.New("invalid port: must be between 0 and 65535")
	ErrInvalidConfig = errors.New("invalid configuration")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Manager handles configuration loading, saving, and updates
type Manager struct {
	mu         sync.RWMutex
	config     *models.Config
	configPath string
}

// NewManager creates a new configuration manager
// If the config file doesn't exist, it creates one with default values
func NewManager(configPath string) (*Manager, error) {
	manager := &Manager{
		configPath: configPath,
		config:     models.DefaultConfig(),
	}

	// Try to load existing config
	if _, err := os.Stat(configPath); err == nil {
		if err := manager.load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := manager.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	if err := Validate(manager.config); err != nil {
		return nil, err
	}

	return manager, nil
}

// Get returns a copy of the current configuration
func (m *Manager) Get() *models.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := *m.config
	cfg.MemcachedServers = append([]string(nil), m.config.MemcachedServers...)
	return &cfg
}

// Update applies a function to a copy of the configuration, validates the
// result and saves it. Nothing changes if fn or validation fails.
func (m *Manager) Update(fn func(*models.Config) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	candidate := *m.config
	candidate.MemcachedServers = append([]string(nil), m.config.MemcachedServers...)
	if err := fn(&candidate); err != nil {
		return err
	}

	if err := Validate(&candidate); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	m.config = &candidate
	return m.save()
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.save()
}

// Path returns the file backing this manager
func (m *Manager) Path() string {
	return m.configPath
}

// load reads configuration from disk
func (m *Manager) load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields absent from the file keep their defaults
	cfg := models.DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.config = mergeWithDefaults(cfg)

	return nil
}

// save writes configuration to disk (must be called with lock held)
func (m *Manager) save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// mergeWithDefaults replaces blank strings with defaults. Numbers are kept
// as written since zero is meaningful (random port, caching disabled).
func mergeWithDefaults(cfg *models.Config) *models.Config {
	defaults := models.DefaultConfig()

	if cfg.BindHost == "" {
		cfg.BindHost = defaults.BindHost
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaults.APIBaseURL
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = defaults.APIKeyEnv
	}
	if cfg.Locale == "" {
		cfg.Locale = defaults.Locale
	}
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = defaults.DefaultTheme
	}
	if cfg.MemcachedServers == nil {
		cfg.MemcachedServers = defaults.MemcachedServers
	}

	return cfg
}

// ApplyEnv overrides configuration fields from YTLOOKUP_* variables.
// lookup is usually os.LookupEnv.
func ApplyEnv(cfg *models.Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("YTLOOKUP_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("YTLOOKUP_PORT: %w", ErrInvalidPort)
		}
		cfg.WebServerPort = port
	}
	if v, ok := lookup("YTLOOKUP_BIND_HOST"); ok && v != "" {
		cfg.BindHost = v
	}
	if v, ok := lookup("YTLOOKUP_API_BASE_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup("YTLOOKUP_API_KEY_ENV"); ok && v != "" {
		cfg.APIKeyEnv = v
	}
	if v, ok := lookup("YTLOOKUP_MEMCACHED"); ok {
		cfg.MemcachedServers = splitList(v)
	}
	if v, ok := lookup("YTLOOKUP_LOCALE"); ok && v != "" {
		cfg.Locale = v
	}

	return Validate(cfg)
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func Validate(cfg *models.Config) error {
	if cfg.WebServerPort < 0 || cfg.WebServerPort > 65535 {
		return ErrInvalidPort
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %s failed %q", ErrInvalidConfig, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// GetDataDir returns the application data directory
func GetDataDir() string {
	if dir := os.Getenv("YTLOOKUP_DATA_DIR"); dir != "" {
		os.MkdirAll(dir, 0755)
		return dir
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		dataDir := filepath.Join(configDir, "ytlookup")
		os.MkdirAll(dataDir, 0755)
		return dataDir
	}

	// Last resort: current directory
	return "."
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	return filepath.Join(GetDataDir(), "config.json")
}
