package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/slidecraft/slidecraft/deck"
	"github.com/slidecraft/slidecraft/segment"
	"github.com/slidecraft/slidecraft/sizing"
)

// Segmenter contains configuration for the segmentation stage. Glyphs
// are TOML strings and must each be exactly one rune.
type Segmenter struct {
	DefaultTitle string   `toml:"default_title"`
	Markers      []string `toml:"markers"`
	BulletGlyphs []string `toml:"bullet_glyphs"`
}

// Sizing contains configuration for the sizing stage. Budgets maps a
// density class name (large, medium, small) to its per-slide rune
// budget.
type Sizing struct {
	SummaryMarkers []string       `toml:"summary_markers"`
	ShortTitleMax  int            `toml:"short_title_max"`
	LongPointAvg   int            `toml:"long_point_avg"`
	Budgets        map[string]int `toml:"budgets"`
}

// Allocation contains configuration for the allocation stage.
type Allocation struct {
	Seed             *int64 `toml:"seed"`
	DateFormat       string `toml:"date_format"`
	LegacySilentDrop bool   `toml:"legacy_silent_drop"`
}

// Config centralizes every knob the CLI needs.
type Config struct {
	Title      string     `toml:"title"`
	Segmenter  Segmenter  `toml:"segmenter"`
	Sizing     Sizing     `toml:"sizing"`
	Allocation Allocation `toml:"allocation"`
}

// Default returns the repository default configuration. The zero
// values of the stage sections defer to the per-package defaults.
func Default() Config {
	return Config{
		Allocation: Allocation{DateFormat: "2006-01-02"},
	}
}

// Load reads a TOML config file over the defaults. A missing file at
// an explicitly given path is an error; an empty path yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return &cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks glyphs and budget class names.
func (c *Config) Validate() error {
	for _, g := range c.Segmenter.BulletGlyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("bullet_glyphs entries must be single characters, got %q", g)
		}
	}
	for name := range c.Sizing.Budgets {
		if _, err := parseClass(name); err != nil {
			return err
		}
	}
	if c.Sizing.ShortTitleMax < 0 {
		return fmt.Errorf("short_title_max must not be negative, got %d", c.Sizing.ShortTitleMax)
	}
	if c.Sizing.LongPointAvg < 0 {
		return fmt.Errorf("long_point_avg must not be negative, got %d", c.Sizing.LongPointAvg)
	}
	return nil
}

// SegmentConfig converts the file-level settings into a segmentation
// configuration, falling back to package defaults for unset fields.
func (c *Config) SegmentConfig() segment.Config {
	cfg := segment.DefaultConfig()
	if c.Segmenter.DefaultTitle != "" {
		cfg.DefaultTitle = c.Segmenter.DefaultTitle
	}
	if len(c.Segmenter.Markers) > 0 {
		cfg.Markers = append([]string(nil), c.Segmenter.Markers...)
	}
	if len(c.Segmenter.BulletGlyphs) > 0 {
		glyphs := make([]rune, 0, len(c.Segmenter.BulletGlyphs))
		for _, g := range c.Segmenter.BulletGlyphs {
			r, _ := utf8.DecodeRuneInString(g)
			glyphs = append(glyphs, r)
		}
		cfg.BulletGlyphs = glyphs
	}
	return cfg
}

// SizingConfig converts the file-level settings into a sizing
// configuration, falling back to package defaults for unset fields.
func (c *Config) SizingConfig() sizing.Config {
	cfg := sizing.DefaultConfig()
	if len(c.Sizing.SummaryMarkers) > 0 {
		cfg.SummaryMarkers = append([]string(nil), c.Sizing.SummaryMarkers...)
	}
	if c.Sizing.ShortTitleMax > 0 {
		cfg.ShortTitleMax = c.Sizing.ShortTitleMax
	}
	if c.Sizing.LongPointAvg > 0 {
		cfg.LongPointAvg = c.Sizing.LongPointAvg
	}
	if len(c.Sizing.Budgets) > 0 {
		cfg.Budgets = make(map[deck.DensityClass]int, len(c.Sizing.Budgets))
		for name, budget := range c.Sizing.Budgets {
			class, _ := parseClass(name)
			cfg.Budgets[class] = budget
		}
	}
	return cfg
}

// parseClass maps a budget class name to its density class.
func parseClass(name string) (deck.DensityClass, error) {
	switch name {
	case "large":
		return deck.DensityLarge, nil
	case "medium":
		return deck.DensityMedium, nil
	case "small":
		return deck.DensitySmall, nil
	default:
		return deck.DensityUnclassified, fmt.Errorf("unknown budget class %q (want large, medium, or small)", name)
	}
}
