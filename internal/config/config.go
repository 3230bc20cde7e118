// Package config holds the palette configuration and its persistence
// boundary. The engine itself never touches storage: commands load a
// Config, hand the engine a snapshot, and save the result of any edits.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/aguscruiz/color-palette-generator/internal/colour"
)

const (
	// DefaultChroma is the shared chroma applied to every family at
	// generation time. Chroma is global, not per family.
	DefaultChroma = 0.12

	// MaxChroma is the upper bound the presentation layer clamps chroma to.
	MaxChroma = 0.4

	// DefaultSteps is the number of steps per scale.
	DefaultSteps = 11

	// MinSteps is the floor enforced before generation. The engine itself
	// rejects anything below 2; the UI floor stays a step higher.
	MinSteps = 3

	appDirName     = "color-palette-generator"
	configFileName = "config.json"
)

// Family is a base colour a user manages. Only lightness and hue are
// stored; chroma comes from the global setting at generation time.
type Family struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Lightness float64 `json:"l"`
	Hue       float64 `json:"h"`
}

// NewFamily creates a family with a fresh ID.
func NewFamily(name string, lightness, hue float64) Family {
	return Family{
		ID:        uuid.NewString(),
		Name:      name,
		Lightness: lightness,
		Hue:       hue,
	}
}

// SetHex re-derives the family's lightness and hue from a hex colour. The
// parsed chroma is discarded because chroma is global. Unparsable input
// leaves the family unchanged and returns false.
func (f *Family) SetHex(hex string) bool {
	o, ok := colour.HexToOklch(hex)
	if !ok {
		return false
	}
	f.Lightness = o.L
	f.Hue = o.H
	return true
}

// Base returns the family's own colour at the given chroma, used for the
// single-swatch preview shown before a scale is expanded.
func (f Family) Base(chroma float64) colour.OKLCH {
	return colour.OKLCH{L: f.Lightness, C: chroma, H: f.Hue}
}

// Config is the explicit configuration snapshot handed to the engine on
// each generation request.
type Config struct {
	Chroma    float64         `json:"chroma"`
	Steps     int             `json:"steps"`
	Reference string          `json:"reference"`
	Targets   map[int]float64 `json:"targets,omitempty"`
	Families  []Family        `json:"families"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		Chroma:    DefaultChroma,
		Steps:     DefaultSteps,
		Reference: colour.DefaultReference,
	}
}

// Normalise clamps presentation-layer inputs into the ranges the engine
// expects: the step floor and the chroma range.
func (c *Config) Normalise() {
	if c.Steps < MinSteps {
		c.Steps = MinSteps
	}
	if c.Chroma < 0 {
		c.Chroma = 0
	}
	if c.Chroma > MaxChroma {
		c.Chroma = MaxChroma
	}
	if c.Reference == "" {
		c.Reference = colour.DefaultReference
	}
	// Hand-edited configs can carry targets the flag parser would have
	// rejected; apply the same [1, 21] bound here.
	for idx, ratio := range c.Targets {
		if ratio < 1 || ratio > 21 {
			delete(c.Targets, idx)
		}
	}
}

// FindFamily looks a family up by ID or name.
func (c *Config) FindFamily(idOrName string) (*Family, bool) {
	for i := range c.Families {
		if c.Families[i].ID == idOrName || c.Families[i].Name == idOrName {
			return &c.Families[i], true
		}
	}
	return nil, false
}

// RemoveFamily removes a family by ID or name. Returns false if no family
// matched.
func (c *Config) RemoveFamily(idOrName string) bool {
	for i := range c.Families {
		if c.Families[i].ID == idOrName || c.Families[i].Name == idOrName {
			c.Families = append(c.Families[:i], c.Families[i+1:]...)
			return true
		}
	}
	return false
}

// Dir returns the configuration directory. PALETTE_CONFIG_DIR overrides;
// otherwise XDG_CONFIG_HOME (or ~/.config) is used.
func Dir() (string, error) {
	if dir := os.Getenv("PALETTE_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the configuration from path. A missing file yields the
// defaults (with environment overrides applied), not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-specified config path
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	applyEnv(&cfg)
	cfg.Normalise()
	return cfg, nil
}

// Save writes the configuration to path, creating directories as needed.
func Save(cfg Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnv overlays environment overrides. A .env file in the working
// directory is honoured because main loads it before the CLI runs.
func applyEnv(cfg *Config) {
	if ref := os.Getenv("PALETTE_REFERENCE"); ref != "" {
		cfg.Reference = ref
	}
}
