package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"grouplist/internal/domain"
)

// Config represents the demo application configuration
type Config struct {
	SingleExpansion bool          `toml:"single_expansion"`
	Orientation     string        `toml:"orientation"` // "vertical" or "horizontal"
	Catalog         []GroupConfig `toml:"catalog"`
	UISettings      UISettings    `toml:"ui"`
}

// GroupConfig describes one group of the demo catalog
type GroupConfig struct {
	Title    string   `toml:"title"`
	Items    []string `toml:"items"`
	Expanded bool     `toml:"expanded"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// Orient maps the configured orientation string onto the domain type,
// defaulting to vertical.
func (c *Config) Orient() domain.Orientation {
	if c.Orientation == "horizontal" {
		return domain.Horizontal
	}
	return domain.Vertical
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "grouplist")
	os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// DefaultConfig returns the configuration used when none exists yet
func DefaultConfig() *Config {
	return &Config{
		Orientation: "vertical",
		Catalog: []GroupConfig{
			{Title: "Kind of Blue", Items: []string{"So What", "Freddie Freeloader", "Blue in Green", "All Blues", "Flamenco Sketches"}},
			{Title: "A Love Supreme", Items: []string{"Acknowledgement", "Resolution", "Pursuance", "Psalm"}},
			{Title: "Mingus Ah Um", Items: []string{"Better Git It in Your Soul", "Goodbye Pork Pie Hat", "Boogie Stop Shuffle", "Self-Portrait in Three Colors"}},
			{Title: "Time Out", Items: []string{"Blue Rondo à la Turk", "Take Five", "Three to Get Ready"}},
		},
		UISettings: UISettings{AutosaveOnExit: true},
	}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads the configuration from an explicit path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveToPath saves the configuration to an explicit path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
