package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadDefaults verifies the built-in defaults when no file and no env
// overrides exist.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("SCRAP_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Engine.Name != "textview" {
		t.Errorf("expected default engine textview, got %q", c.Engine.Name)
	}
	if c.Engine.Homepage != "https://example.org" {
		t.Errorf("expected default homepage, got %q", c.Engine.Homepage)
	}
	if c.Input.ScrollStep != 3 {
		t.Errorf("expected default scroll step 3, got %d", c.Input.ScrollStep)
	}
	if !c.Audio.Enabled {
		t.Error("expected audio enabled by default")
	}
}

// TestLoadFile verifies values from a TOML file override the defaults.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[engine]
homepage = "scrap://start"

[input]
scroll_step = 5

[audio]
enabled = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SCRAP_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Engine.Homepage != "scrap://start" {
		t.Errorf("expected homepage from file, got %q", c.Engine.Homepage)
	}
	if c.Input.ScrollStep != 5 {
		t.Errorf("expected scroll step 5, got %d", c.Input.ScrollStep)
	}
	if c.Audio.Enabled {
		t.Error("expected audio disabled from file")
	}
	// Unset keys keep their defaults.
	if c.Engine.Name != "textview" {
		t.Errorf("expected default engine name, got %q", c.Engine.Name)
	}
}

// TestLoadEnvOverride verifies environment variables win over defaults.
func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SCRAP_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SCRAP_ENGINE_HOMEPAGE", "scrap://env")
	t.Setenv("SCRAP_INPUT_SCROLL_STEP", "7")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Engine.Homepage != "scrap://env" {
		t.Errorf("expected homepage from env, got %q", c.Engine.Homepage)
	}
	if c.Input.ScrollStep != 7 {
		t.Errorf("expected scroll step 7 from env, got %d", c.Input.ScrollStep)
	}
}
