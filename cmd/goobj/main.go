package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/philipparndt/goobj/version"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "goobj",
		Short: "Scale, rotate and translate OBJ models",
		Long: `goobj rewrites the vertex positions of Wavefront OBJ files.
It scales models to target dimensions, rotates them around the coordinate
axes and moves them, while every non-vertex line (normals, texture
coordinates, faces, materials, comments) is written back unchanged.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newTransformCmd())
	root.AddCommand(newScaleCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newWatchCmd())

	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
