package probes

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Options contains the recognized probe volume settings
type Options struct {
	// Target lattice spacing between probes, world units.
	ProbeSpacing float64 `yaml:"probeSpacing"`

	// Max probes refreshed per frame.
	UpdateBudget int `yaml:"updateBudget"`

	// Fraction of the previous estimate retained per refresh; 0 replaces
	// the stored coefficients outright.
	Hysteresis float64 `yaml:"hysteresis"`

	// Ray cutoff distance for radiance and shadow rays.
	MaxDistance float64 `yaml:"maxDistance"`

	// Grid inflation beyond the captured geometry bounds.
	BoundsPadding float64 `yaml:"boundsPadding"`

	// Sample directions per probe per refresh.
	SampleCount int `yaml:"sampleCount"`

	// Seconds between light list refreshes.
	LightRefreshInterval float64 `yaml:"lightRefreshInterval"`
}

// DefaultOptions returns the settings used when nothing is configured
func DefaultOptions() Options {
	return Options{
		ProbeSpacing:         2.0,
		UpdateBudget:         8,
		Hysteresis:           0.85,
		MaxDistance:          50.0,
		BoundsPadding:        0.5,
		SampleCount:          64,
		LightRefreshInterval: 0.5,
	}
}

// normalize clamps out-of-range settings back to usable values
func (o *Options) normalize() {
	def := DefaultOptions()
	if o.ProbeSpacing <= 0 || math.IsNaN(o.ProbeSpacing) || math.IsInf(o.ProbeSpacing, 0) {
		o.ProbeSpacing = def.ProbeSpacing
	}
	if o.UpdateBudget < 1 {
		o.UpdateBudget = def.UpdateBudget
	}
	if o.Hysteresis < 0 || math.IsNaN(o.Hysteresis) {
		o.Hysteresis = 0
	}
	if o.Hysteresis >= 1 {
		o.Hysteresis = def.Hysteresis
	}
	if o.MaxDistance <= 0 || math.IsNaN(o.MaxDistance) || math.IsInf(o.MaxDistance, 0) {
		o.MaxDistance = def.MaxDistance
	}
	if o.BoundsPadding < 0 || math.IsNaN(o.BoundsPadding) {
		o.BoundsPadding = 0
	}
	if o.SampleCount <= 0 {
		o.SampleCount = def.SampleCount
	}
	if o.LightRefreshInterval <= 0 || math.IsNaN(o.LightRefreshInterval) {
		o.LightRefreshInterval = def.LightRefreshInterval
	}
}

// LoadOptions reads settings from a YAML file. A missing file yields the
// defaults without an error; a file that exists but does not parse is
// reported. Loaded values are normalized the same way NewProbeVolume
// normalizes direct Options.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("read options: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("parse options: %w", err)
	}

	opts.normalize()
	return opts, nil
}
