package transform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Options is the configuration record of a transform run. Pointer fields are
// optional; zero rotations and translations are skipped.
type Options struct {
	TargetWidth  *float64 `toml:"target_width" yaml:"target_width"`
	TargetLength *float64 `toml:"target_length" yaml:"target_length"`
	TargetRadius *float64 `toml:"target_radius" yaml:"target_radius"`
	Scale        *float64 `toml:"scale" yaml:"scale"`

	RotateX float64 `toml:"rotate_x" yaml:"rotate_x"`
	RotateY float64 `toml:"rotate_y" yaml:"rotate_y"`
	RotateZ float64 `toml:"rotate_z" yaml:"rotate_z"`

	TranslateX float64 `toml:"translate_x" yaml:"translate_x"`
	TranslateY float64 `toml:"translate_y" yaml:"translate_y"`
	TranslateZ float64 `toml:"translate_z" yaml:"translate_z"`
}

// Target describes the dimensions a scale factor is derived from
type Target struct {
	Radius *float64
	Width  *float64
	Length *float64
}

// IsZero reports whether no target dimension is set
func (t Target) IsZero() bool {
	return t.Radius == nil && t.Width == nil && t.Length == nil
}

// Target returns the scale target part of the options
func (o Options) Target() Target {
	return Target{Radius: o.TargetRadius, Width: o.TargetWidth, Length: o.TargetLength}
}

// Validate checks that the scale inputs can be satisfied together
func (o Options) Validate() error {
	target := o.Target()
	if target.Radius != nil && (target.Width != nil || target.Length != nil) {
		return fmt.Errorf("%w: target radius cannot be combined with target width or length", ErrConflictingTargets)
	}
	if o.Scale != nil && *o.Scale != 0 && !target.IsZero() {
		return fmt.Errorf("%w: explicit scale cannot be combined with target dimensions", ErrConflictingTargets)
	}
	if o.Scale != nil && (!(*o.Scale >= 0) || math.IsInf(*o.Scale, 0)) {
		return fmt.Errorf("%w: scale %g must be a finite positive number", ErrDegenerateScale, *o.Scale)
	}
	return nil
}

// Float returns a pointer to v, handy for building Options literals
func Float(v float64) *float64 {
	return &v
}

// LoadOptions reads options from a TOML (.toml) or YAML (.yaml, .yml) file
func LoadOptions(path string) (Options, error) {
	var opts Options

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return opts, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return opts, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			return opts, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return opts, fmt.Errorf("unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	return opts, nil
}
