package world

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGeneratorConfigSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "biomecore.toml")

	cfg := GeneratorConfig{
		Version:       "1.13",
		Dimension:     "overworld",
		Seed:          123456789,
		LargeBiomes:   true,
		SampleNoShift: true,
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadGeneratorConfig(path)
	if err != nil {
		t.Fatalf("LoadGeneratorConfig: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("round-tripped config mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratorConfigBuildRejectsUnknownVersion(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Version = "2.0-nonexistent"
	if _, _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestGeneratorConfigBuildRejectsUnknownDimension(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Dimension = "limbo"
	if _, _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for unknown dimension")
	}
}

func TestGeneratorConfigBuildSucceedsWithDefaults(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	gen, dim, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if dim != Overworld {
		t.Fatalf("dim = %v, want Overworld", dim)
	}
	if gen == nil {
		t.Fatal("Build returned nil generator")
	}
}
