package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML FlappyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("flappy"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultFlappyConfig() {
		t.Errorf("embedded defaults drifted from DefaultFlappyConfig():\n yaml=%+v\n code=%+v", fromYAML, DefaultFlappyConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFlappyCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "physics:\n  gravity: 1200\nspawn:\n  interval: 1500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1200 {
		t.Errorf("gravity = %v, expected 1200", cfg.Physics.Gravity)
	}
	if cfg.Spawn.Interval != 1500*time.Millisecond {
		t.Errorf("interval = %v, expected 1.5s", cfg.Spawn.Interval)
	}
	// Unnamed values keep their defaults
	if cfg.Physics.FlapImpulse != 300 {
		t.Errorf("flap impulse = %v, expected default 300", cfg.Physics.FlapImpulse)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(broken); err == nil {
		t.Error("unparseable custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  inset_x: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFlappy(invalid)
	if err == nil || !strings.Contains(err.Error(), "inset_x") {
		t.Errorf("invalid custom config should name the field, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		field  string
	}{
		{"zero gravity", func(c *FlappyConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"negative impulse", func(c *FlappyConfig) { c.Physics.FlapImpulse = -1 }, "flap_impulse"},
		{"negative scroll", func(c *FlappyConfig) { c.Physics.ScrollSpeed = -5 }, "scroll_speed"},
		{"zero interval", func(c *FlappyConfig) { c.Spawn.Interval = 0 }, "interval"},
		{"negative offset", func(c *FlappyConfig) { c.Spawn.MaxOffset = -1 }, "max_offset"},
		{"flat body", func(c *FlappyConfig) { c.Body.Height = 0 }, "body"},
		{"inset too large", func(c *FlappyConfig) { c.Obstacles.InsetY = 250 }, "inset_y"},
		{"no display scale", func(c *FlappyConfig) { c.Display.UnitsPerRow = 0 }, "display"},
		{"no frame cap", func(c *FlappyConfig) { c.Display.MaxFrame = 0 }, "max_frame"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}
