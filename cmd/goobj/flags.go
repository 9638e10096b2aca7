package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/philipparndt/goobj/pkg/transform"
)

// transformFlags binds the transform options to command line flags
type transformFlags struct {
	config string

	targetWidth  float64
	targetLength float64
	targetRadius float64
	scale        float64

	rotateX, rotateY, rotateZ          float64
	translateX, translateY, translateZ float64
}

func (f *transformFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.config, "config", "c", "", "read options from a TOML or YAML file (flags override it)")

	f.registerTargets(flags)
	flags.Float64Var(&f.scale, "scale", 0, "uniform scale factor")

	flags.Float64Var(&f.rotateX, "rotate-x", 0, "rotation around X axis (degrees)")
	flags.Float64Var(&f.rotateY, "rotate-y", 0, "rotation around Y axis (degrees)")
	flags.Float64Var(&f.rotateZ, "rotate-z", 0, "rotation around Z axis (degrees)")

	flags.Float64Var(&f.translateX, "translate-x", 0, "translation along X axis")
	flags.Float64Var(&f.translateY, "translate-y", 0, "translation along Y axis")
	flags.Float64Var(&f.translateZ, "translate-z", 0, "translation along Z axis")
}

func (f *transformFlags) registerTargets(flags *pflag.FlagSet) {
	flags.Float64Var(&f.targetWidth, "target-width", 0, "target width (X axis)")
	flags.Float64Var(&f.targetLength, "target-length", 0, "target length (Y axis)")
	flags.Float64Var(&f.targetRadius, "target-radius", 0, "target radius (for wheels, from center to edge)")
}

// options merges the config file (if any) with the flags set explicitly on cmd
func (f *transformFlags) options(cmd *cobra.Command) (transform.Options, error) {
	var opts transform.Options
	if f.config != "" {
		loaded, err := transform.LoadOptions(f.config)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	setPtr := func(name string, dst **float64, v float64) {
		if flags.Changed(name) {
			*dst = transform.Float(v)
		}
	}
	set := func(name string, dst *float64, v float64) {
		if flags.Changed(name) {
			*dst = v
		}
	}

	setPtr("target-width", &opts.TargetWidth, f.targetWidth)
	setPtr("target-length", &opts.TargetLength, f.targetLength)
	setPtr("target-radius", &opts.TargetRadius, f.targetRadius)
	setPtr("scale", &opts.Scale, f.scale)

	set("rotate-x", &opts.RotateX, f.rotateX)
	set("rotate-y", &opts.RotateY, f.rotateY)
	set("rotate-z", &opts.RotateZ, f.rotateZ)
	set("translate-x", &opts.TranslateX, f.translateX)
	set("translate-y", &opts.TranslateY, f.translateY)
	set("translate-z", &opts.TranslateZ, f.translateZ)

	return opts, opts.Validate()
}
