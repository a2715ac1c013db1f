package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"rushlint/internal/domain"
)

//go:embed defaults.toml
var defaultsTOML []byte

type Scan struct {
	Patterns  []string `toml:"patterns"`
	Files     []string `toml:"files"`
	Globs     []string `toml:"globs"`
	Sweep     string   `toml:"sweep"`
	Extension string   `toml:"extension"`
}

type Output struct {
	Dir         string `toml:"dir"`
	MappingFile string `toml:"mapping_file"`
	Package     string `toml:"package"`
}

type Config struct {
	Root     string                       `toml:"-"`
	Locale   string                       `toml:"locale"`
	Scan     Scan                         `toml:"scan"`
	Stores   map[string]string            `toml:"stores"`
	Output   Output                       `toml:"output"`
	Mappings map[string]map[string]string `toml:"mappings"`
}

// Load builds the configuration in layers: compiled-in defaults, then a TOML
// config file, then environment variables. configPath == "" means the default
// rushlint.toml, which is optional; an explicitly given path must exist.
func Load(root, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; RUSHLINT_* may come from the environment directly.
	}

	cfg := &Config{}
	if err := toml.Unmarshal(defaultsTOML, cfg); err != nil {
		return nil, fmt.Errorf("config: parse defaults: %w", err)
	}

	explicit := configPath != ""
	if !explicit {
		configPath = envOr("RUSHLINT_CONFIG", "rushlint.toml")
	}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		var user Config
		if err := toml.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", configPath, err)
		}
		cfg.merge(&user)
	case explicit:
		return nil, fmt.Errorf("config: read %s: %w", configPath, err)
	}

	if root == "" {
		root = envOr("RUSHLINT_ROOT", ".")
	}
	cfg.Root = root
	if loc := os.Getenv("RUSHLINT_LOCALE"); loc != "" {
		cfg.Locale = loc
	}
	if dir := os.Getenv("RUSHLINT_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays every field the user config actually set.
func (c *Config) merge(o *Config) {
	if o.Locale != "" {
		c.Locale = o.Locale
	}
	if len(o.Scan.Patterns) > 0 {
		c.Scan.Patterns = o.Scan.Patterns
	}
	if len(o.Scan.Files) > 0 {
		c.Scan.Files = o.Scan.Files
	}
	if len(o.Scan.Globs) > 0 {
		c.Scan.Globs = o.Scan.Globs
	}
	if o.Scan.Sweep != "" {
		c.Scan.Sweep = o.Scan.Sweep
	}
	if o.Scan.Extension != "" {
		c.Scan.Extension = o.Scan.Extension
	}
	if len(o.Stores) > 0 {
		c.Stores = o.Stores
	}
	if o.Output.Dir != "" {
		c.Output.Dir = o.Output.Dir
	}
	if o.Output.MappingFile != "" {
		c.Output.MappingFile = o.Output.MappingFile
	}
	if o.Output.Package != "" {
		c.Output.Package = o.Output.Package
	}
	if len(o.Mappings) > 0 {
		c.Mappings = o.Mappings
	}
}

func (c *Config) validate() error {
	if len(c.Scan.Patterns) == 0 {
		return fmt.Errorf("config: %w", domain.ErrEmptyPatternList)
	}
	if len(c.Stores) == 0 {
		return fmt.Errorf("config: %w", domain.ErrNoStores)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
