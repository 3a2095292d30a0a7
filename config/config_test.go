package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Gene.Min != 0.1 || cfg.Gene.Max != 2.0 {
		t.Errorf("expected gene range [0.1, 2.0], got [%v, %v]", cfg.Gene.Min, cfg.Gene.Max)
	}
	if cfg.Individual.MaxEnergy != 4 {
		t.Errorf("expected max energy 4, got %v", cfg.Individual.MaxEnergy)
	}
	if cfg.Reproduction.Mode != ReproduceSingle {
		t.Errorf("expected reproduction mode %q, got %q", ReproduceSingle, cfg.Reproduction.Mode)
	}
	if cfg.Reproduction.RequireShelter {
		t.Error("expected reproduction not to require shelter by default")
	}
	if cfg.Play.SlowInterval != time.Second {
		t.Errorf("expected slow interval 1s, got %v", cfg.Play.SlowInterval)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "population:\n  target: 50\nreproduction:\n  mode: per_energy\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Population.Target != 50 {
		t.Errorf("expected target 50, got %d", cfg.Population.Target)
	}
	if cfg.Population.MigrationFloor != 5 {
		t.Errorf("expected untouched migration floor 5, got %d", cfg.Population.MigrationFloor)
	}
	if cfg.Reproduction.Mode != ReproducePerEnergy {
		t.Errorf("expected mode %q, got %q", ReproducePerEnergy, cfg.Reproduction.Mode)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"inverted gene range", "gene:\n  min: 3\n  max: 1\n", "gene.min"},
		{"zero max energy", "individual:\n  max_energy: 0\n", "max_energy"},
		{"unknown mode", "reproduction:\n  mode: litter\n", "reproduction.mode"},
		{"initial above max energy", "individual:\n  initial_energy: 5\n", "initial_energy"},
		{"negative initial energy", "individual:\n  initial_energy: -1\n", "initial_energy"},
		{"negative shift range", "gene:\n  shift_range: -0.5\n", "shift_range"},
		{"inverted food factors", "environment:\n  min_food_factor: 0.9\n  max_food_factor: 0.1\n", "food_factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Population.Target = 42
	cfg.Play.FastInterval = 250 * time.Millisecond

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Population.Target != 42 {
		t.Errorf("expected target 42, got %d", loaded.Population.Target)
	}
	if loaded.Play.FastInterval != 250*time.Millisecond {
		t.Errorf("expected fast interval 250ms, got %v", loaded.Play.FastInterval)
	}
}
