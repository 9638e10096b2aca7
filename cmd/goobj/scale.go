package main

import (
	"github.com/spf13/cobra"
)

func newScaleCmd() *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   "scale <input.obj> <output.obj>",
		Short: "Scale an OBJ file to target dimensions",
		Long: `Scale an OBJ model uniformly so that it reaches a target size.

Use --target-radius for round objects such as wheels (distance from the
origin to the outermost vertex), or --target-width and/or --target-length
for bodies. When both width and length are given the factor is the average
of the two ratios, so proportions are kept and neither is matched exactly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return runTransform(cmd, args[0], args[1], opts)
		},
	}

	flags.registerTargets(cmd.Flags())
	cmd.MarkFlagsOneRequired("target-width", "target-length", "target-radius")
	cmd.MarkFlagsMutuallyExclusive("target-radius", "target-width")
	cmd.MarkFlagsMutuallyExclusive("target-radius", "target-length")
	return cmd
}
