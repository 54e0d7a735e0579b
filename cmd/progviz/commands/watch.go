package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"progviz/internal/watch"
)

func watchCmd() *cobra.Command {
	var debounce = watch.DefaultDebounce
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild whenever an input workbook changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := requireApp()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			rebuild := func() error {
				res, err := a.Build()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Built %s (fingerprint %s)\n", res.Program.Department, res.Manifest.Fingerprint)
				return nil
			}
			if err := rebuild(); err != nil {
				logger.Error("Initial build failed", zap.Error(err))
			}

			w, err := watch.New([]string{cfg.Courses, cfg.Categories, cfg.Sequence, cfg.Accreditation}, debounce, logger.Named("watch"))
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			fmt.Fprintln(out, "Watching for changes; press Ctrl+C to stop.")
			return w.Run(ctx, rebuild)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before rebuilding")
	return cmd
}
