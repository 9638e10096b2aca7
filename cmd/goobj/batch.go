package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/batch"
	"github.com/philipparndt/goobj/pkg/transform"
)

func newBatchCmd() *cobra.Command {
	var (
		flags   transformFlags
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch <input-dir> <output-dir>",
		Short: "Apply the same transform to every OBJ file in a directory",
		Long: `Transform every *.obj file in input-dir and write the results with the same
names into output-dir, which is created if needed. Files are processed
concurrently; a failing file is reported and does not stop the others.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return runBatch(cmd, args[0], args[1], opts, workers)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "number of files processed concurrently")
	return cmd
}

func runBatch(cmd *cobra.Command, inputDir, outputDir string, opts transform.Options, workers int) error {
	logger := loggerFromContext(cmd.Context())

	jobs, err := batch.DiscoverJobs(inputDir, outputDir)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no OBJ files found in %s", inputDir)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	logger.Info("Processing", "files", len(jobs), "workers", workers)

	pipeline := transform.NewPipeline(logger)
	outcomes, err := batch.Run(cmd.Context(), jobs, workers, func(ctx context.Context, job batch.Job) (*transform.Result, error) {
		return pipeline.RunFile(ctx, job.Input, job.Output, opts)
	})

	w := cmd.OutOrStdout()
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			logger.Error("failed", "file", o.Job.Input, "err", o.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", o.Job.Output, analysis.FormatDimensions(o.Result.After))
	}
	fmt.Fprintf(w, "Processed %d files, %d failed\n", len(outcomes), failed)

	return err
}
