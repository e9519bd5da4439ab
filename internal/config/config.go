// Package config holds the engine's tunable defaults: gesture slop and
// timeout constants, fling thresholds, velocity estimation parameters, and
// the target frame rate the scheduler derives its budget from. Values are
// loadable from YAML via gopkg.in/yaml.v3, mirroring
// pkg/engine/diagnostics.go's DiagnosticsConfig floor-and-default pattern.
package config

import "time"

// SchemaVersion is the current config file schema, checked against a
// loaded file's own SchemaVersion field with golang.org/x/mod/semver.
const SchemaVersion = "v1.0.0"

// Config is the engine's tunable surface (spec.md §6's config defaults).
type Config struct {
	SchemaVersion string `yaml:"schemaVersion"`

	TouchSlop          float64       `yaml:"touchSlop"`
	DoubleTapSlop       float64       `yaml:"doubleTapSlop"`
	DoubleTapTimeout    time.Duration `yaml:"doubleTapTimeout"`
	LongPressTimeout    time.Duration `yaml:"longPressTimeout"`
	PanSlop             float64       `yaml:"panSlop"`
	ScaleSlop           float64       `yaml:"scaleSlop"`
	MinFlingVelocity    float64       `yaml:"minFlingVelocity"`
	ArenaDisambiguation time.Duration `yaml:"arenaDisambiguation"`
	ForcePressStart     float64       `yaml:"forcePressStart"`
	ForcePressPeak      float64       `yaml:"forcePressPeak"`

	TargetFPS       float64       `yaml:"targetFPS"`
	VelocityHorizon time.Duration `yaml:"velocityHorizon"`
	SampleWindow    int           `yaml:"sampleWindow"`
}

// Default returns the spec-mandated default configuration.
func Default() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,

		TouchSlop:           18,
		DoubleTapSlop:       100,
		DoubleTapTimeout:    300 * time.Millisecond,
		LongPressTimeout:    500 * time.Millisecond,
		PanSlop:             18,
		ScaleSlop:           18,
		MinFlingVelocity:    50,
		ArenaDisambiguation: 100 * time.Millisecond,
		ForcePressStart:     0.4,
		ForcePressPeak:      0.85,

		TargetFPS:       60,
		VelocityHorizon: 100 * time.Millisecond,
		SampleWindow:    20,
	}
}

// FrameBudget returns the per-frame time budget derived from TargetFPS
// (spec.md §4.6: "frame budget = 1/target_fps").
func (c *Config) FrameBudget() time.Duration {
	fps := normalizeTargetFPS(c.TargetFPS)
	return time.Duration(float64(time.Second) / fps)
}

// normalizeFloor applies a default when v is non-positive, matching
// pkg/engine/runtime_stats.go's normalizeRuntimeInterval/normalizeRuntimeWindow
// idiom of flooring a configured value to a sane non-zero default.
func normalizeFloor(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func normalizeTargetFPS(fps float64) float64 {
	return normalizeFloor(fps, 60)
}

// Normalize fills in any zero-valued fields with their spec defaults,
// mirroring the teacher's normalizeRuntimeInterval/normalizeRuntimeWindow
// floor-and-default pattern applied across the whole config surface instead
// of just the diagnostics sampler's two fields.
func (c *Config) Normalize() {
	d := Default()
	c.TouchSlop = normalizeFloor(c.TouchSlop, d.TouchSlop)
	c.DoubleTapSlop = normalizeFloor(c.DoubleTapSlop, d.DoubleTapSlop)
	c.PanSlop = normalizeFloor(c.PanSlop, d.PanSlop)
	c.ScaleSlop = normalizeFloor(c.ScaleSlop, d.ScaleSlop)
	c.MinFlingVelocity = normalizeFloor(c.MinFlingVelocity, d.MinFlingVelocity)
	c.ForcePressStart = normalizeFloor(c.ForcePressStart, d.ForcePressStart)
	c.ForcePressPeak = normalizeFloor(c.ForcePressPeak, d.ForcePressPeak)
	c.TargetFPS = normalizeTargetFPS(c.TargetFPS)
	c.SampleWindow = int(normalizeFloor(float64(c.SampleWindow), float64(d.SampleWindow)))

	if c.DoubleTapTimeout <= 0 {
		c.DoubleTapTimeout = d.DoubleTapTimeout
	}
	if c.LongPressTimeout <= 0 {
		c.LongPressTimeout = d.LongPressTimeout
	}
	if c.ArenaDisambiguation <= 0 {
		c.ArenaDisambiguation = d.ArenaDisambiguation
	}
	if c.VelocityHorizon <= 0 {
		c.VelocityHorizon = d.VelocityHorizon
	}
	if c.SchemaVersion == "" {
		c.SchemaVersion = d.SchemaVersion
	}
}
