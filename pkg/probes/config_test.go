package probes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptions_MissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if opts != DefaultOptions() {
		t.Errorf("Expected defaults for a missing file, got %+v", opts)
	}
}

func TestLoadOptions_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probes.yaml")
	content := "probeSpacing: 1.5\nupdateBudget: 16\nhysteresis: 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("Expected clean parse, got %v", err)
	}
	if opts.ProbeSpacing != 1.5 || opts.UpdateBudget != 16 || opts.Hysteresis != 0.5 {
		t.Errorf("Expected configured values to land, got %+v", opts)
	}
	// Unset keys keep their defaults
	def := DefaultOptions()
	if opts.MaxDistance != def.MaxDistance || opts.SampleCount != def.SampleCount {
		t.Errorf("Expected untouched keys at defaults, got %+v", opts)
	}
}

func TestLoadOptions_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probes.yaml")
	if err := os.WriteFile(path, []byte("probeSpacing: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err == nil {
		t.Fatal("Expected a parse error for malformed YAML")
	}
	if opts != DefaultOptions() {
		t.Errorf("Expected defaults alongside the parse error, got %+v", opts)
	}
}

func TestLoadOptions_NormalizesOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probes.yaml")
	content := "probeSpacing: -3\nupdateBudget: 0\nhysteresis: 1.5\nmaxDistance: 0\nsampleCount: -1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("Expected clean parse, got %v", err)
	}
	def := DefaultOptions()
	if opts.ProbeSpacing != def.ProbeSpacing {
		t.Errorf("Expected spacing normalized to %f, got %f", def.ProbeSpacing, opts.ProbeSpacing)
	}
	if opts.UpdateBudget != def.UpdateBudget {
		t.Errorf("Expected budget normalized to %d, got %d", def.UpdateBudget, opts.UpdateBudget)
	}
	if opts.Hysteresis != def.Hysteresis {
		t.Errorf("Expected hysteresis normalized to %f, got %f", def.Hysteresis, opts.Hysteresis)
	}
	if opts.MaxDistance != def.MaxDistance {
		t.Errorf("Expected max distance normalized to %f, got %f", def.MaxDistance, opts.MaxDistance)
	}
	if opts.SampleCount != def.SampleCount {
		t.Errorf("Expected sample count normalized to %d, got %d", def.SampleCount, opts.SampleCount)
	}
}

func TestOptions_NormalizeNegativeHysteresis(t *testing.T) {
	opts := DefaultOptions()
	opts.Hysteresis = -0.2
	opts.normalize()
	if opts.Hysteresis != 0 {
		t.Errorf("Expected negative hysteresis clamped to 0, got %f", opts.Hysteresis)
	}

	opts = DefaultOptions()
	opts.BoundsPadding = -1
	opts.normalize()
	if opts.BoundsPadding != 0 {
		t.Errorf("Expected negative padding clamped to 0, got %f", opts.BoundsPadding)
	}
}
