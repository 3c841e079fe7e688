package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Settings holds the tunable defaults for the helper library.
type Settings struct {
	// DebounceInterval is the quiet period for coalesced size mirroring.
	DebounceInterval time.Duration `mapstructure:"debounce_interval"`
	// ViewportThreshold is the default fractional threshold for
	// viewport-intersection checks.
	ViewportThreshold float64 `mapstructure:"viewport_threshold"`
	// RegistryDatasetKey is the dataset key (camelCase) holding the
	// injected-stylesheet manifest on the remote document root.
	RegistryDatasetKey string `mapstructure:"registry_dataset_key"`
	// PlatformClasses, when non-empty, overrides the detected platform
	// class names added to document roots.
	PlatformClasses []string `mapstructure:"platform_classes"`

	Logging LoggingSettings `mapstructure:"logging"`
}

// LoggingSettings mirrors the logging package configuration.
type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		DebounceInterval:   50 * time.Millisecond,
		ViewportThreshold:  0.75,
		RegistryDatasetKey: "injectedStylesheets",
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	settings  *Settings
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Settings)
	watching  bool
}

// NewManager creates a new configuration manager. The config file is
// optional: when none is found the built-in defaults apply.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("domkit")
	v.SetConfigType("toml")

	configDir, err := configDir()
	if err == nil {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("DOMKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Defaults()
	v.SetDefault("debounce_interval", defaults.DebounceInterval)
	v.SetDefault("viewport_threshold", defaults.ViewportThreshold)
	v.SetDefault("registry_dataset_key", defaults.RegistryDatasetKey)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	m := &Manager{viper: v}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

// Settings returns the current settings snapshot.
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *m.settings
}

func (m *Manager) load() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No file: defaults plus env only.
	}

	settings := Defaults()
	if err := m.viper.Unmarshal(&settings); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.mu.Lock()
	m.settings = &settings
	m.mu.Unlock()
	return nil
}

// configDir resolves the XDG config directory for domkit.
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "domkit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "domkit"), nil
}
