package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/slidecraft/slidecraft/deck"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slidecraft.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Allocation.DateFormat != "2006-01-02" {
		t.Errorf("DateFormat = %q", cfg.Allocation.DateFormat)
	}
	if cfg.Allocation.Seed != nil {
		t.Errorf("Seed = %v, want nil", cfg.Allocation.Seed)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() succeeded on a missing file")
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
title = "Team Update"

[segmenter]
default_title = "Notes"
markers = ["topic:"]
bullet_glyphs = ["-", "・"]

[sizing]
summary_markers = ["wrap-up"]
short_title_max = 12
long_point_avg = 40

[sizing.budgets]
large = 80
small = 400

[allocation]
seed = 7
legacy_silent_drop = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Title != "Team Update" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Allocation.Seed == nil || *cfg.Allocation.Seed != 7 {
		t.Errorf("Seed = %v, want 7", cfg.Allocation.Seed)
	}
	if !cfg.Allocation.LegacySilentDrop {
		t.Error("LegacySilentDrop = false, want true")
	}

	segCfg := cfg.SegmentConfig()
	if segCfg.DefaultTitle != "Notes" {
		t.Errorf("DefaultTitle = %q", segCfg.DefaultTitle)
	}
	if !reflect.DeepEqual(segCfg.Markers, []string{"topic:"}) {
		t.Errorf("Markers = %v", segCfg.Markers)
	}
	if !reflect.DeepEqual(segCfg.BulletGlyphs, []rune{'-', '・'}) {
		t.Errorf("BulletGlyphs = %v", segCfg.BulletGlyphs)
	}

	sizCfg := cfg.SizingConfig()
	if !reflect.DeepEqual(sizCfg.SummaryMarkers, []string{"wrap-up"}) {
		t.Errorf("SummaryMarkers = %v", sizCfg.SummaryMarkers)
	}
	if sizCfg.ShortTitleMax != 12 || sizCfg.LongPointAvg != 40 {
		t.Errorf("limits = %d, %d", sizCfg.ShortTitleMax, sizCfg.LongPointAvg)
	}
	if sizCfg.Budgets[deck.DensityLarge] != 80 || sizCfg.Budgets[deck.DensitySmall] != 400 {
		t.Errorf("Budgets = %v", sizCfg.Budgets)
	}
}

func TestLoadPartialFileKeepsPackageDefaults(t *testing.T) {
	path := writeConfig(t, `
[sizing]
short_title_max = 15
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	segCfg := cfg.SegmentConfig()
	if segCfg.DefaultTitle != "内容" {
		t.Errorf("DefaultTitle = %q, want package default", segCfg.DefaultTitle)
	}
	if len(segCfg.Markers) == 0 {
		t.Error("Markers empty, want package defaults")
	}

	sizCfg := cfg.SizingConfig()
	if sizCfg.ShortTitleMax != 15 {
		t.Errorf("ShortTitleMax = %d, want 15", sizCfg.ShortTitleMax)
	}
	if sizCfg.LongPointAvg != 50 {
		t.Errorf("LongPointAvg = %d, want package default 50", sizCfg.LongPointAvg)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "multi-rune glyph",
			content: `
[segmenter]
bullet_glyphs = ["--"]
`,
		},
		{
			name: "unknown budget class",
			content: `
[sizing.budgets]
gigantic = 50
`,
		},
		{
			name: "negative limit",
			content: `
[sizing]
long_point_avg = -5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() accepted invalid config")
			}
		})
	}
}
