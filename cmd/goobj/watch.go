package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goobj/pkg/transform"
	"github.com/philipparndt/goobj/pkg/watcher"
)

func newWatchCmd() *cobra.Command {
	var (
		flags    transformFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <input.obj> <output.obj>",
		Short: "Re-run a transform whenever the input changes",
		Long: `Transform the input once and then again every time the input file (or the
--config file) is saved. Runs until interrupted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, &flags, args[0], args[1], debounce)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "wait this long after the last change before re-running")
	return cmd
}

func runWatch(cmd *cobra.Command, flags *transformFlags, input, output string, debounce time.Duration) error {
	logger := loggerFromContext(cmd.Context())

	if same, err := samePath(input, output); err != nil {
		return err
	} else if same {
		return fmt.Errorf("output %s would overwrite the watched input", output)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Options are re-read on every run so edits to the config file apply.
	run := func() {
		opts, err := flags.options(cmd)
		if err != nil {
			logger.Error("invalid options", "err", err)
			return
		}
		result, err := transform.NewPipeline(logger).RunFile(ctx, input, output, opts)
		if err != nil {
			logger.Error("transform failed", "err", err)
			return
		}
		printResult(cmd.OutOrStdout(), result, opts.TargetRadius != nil)
		logger.Info("Wrote", "file", output)
	}

	fw, err := watcher.NewFileWatcher(debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	files := []string{input}
	if flags.config != "" {
		files = append(files, flags.config)
	}

	runs := make(chan string, 1)
	if err := fw.Watch(files, func(path string) {
		select {
		case runs <- path:
		default:
		}
	}); err != nil {
		return err
	}
	fw.Start()

	run()
	logger.Info("Watching for changes", "files", files)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopped watching")
			return nil
		case path := <-runs:
			logger.Info("Changed", "file", path)
			run()
		}
	}
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
